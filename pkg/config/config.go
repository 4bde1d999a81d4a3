package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/i5heu/GoNatContainers/internal/testbench"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is an alias for testbench.Config. This allows other programs to import
// the workload configuration without pulling in the entire testbench package.
type Config = testbench.Config

const (
	prefix = "NATBENCH"

	Iterations      = "iter"
	CPU             = "cpu"
	Duration        = "duration"
	BatchSize       = "batch"
	NodeLimit       = "node_limit"
	JSONExport      = "json"
	JSONFile        = "jsonfile"
	MarkdownTable   = "markdown_table"
	Progress        = "progress"
	HighConcurrency = "high_concurrency"
	LogLevel        = "log_level"

	defaultIterations = 5
	defaultDuration   = 5 * time.Second
	defaultBatchSize  = 64
	defaultJSONFile   = "test-results.json"
)

var v = viper.New()

// InitConfiguration reads environment variables prefixed with NATBENCH_, the
// optional config file, and binds them to the flags of cmd.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("cannot read config file", "error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its viper key (config file and environment variable).
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.BindEnv(key, fmt.Sprintf("%s_%s", prefix, strings.ToUpper(key)))

		// Apply the viper value to the flag when the flag is not set and the
		// other way around.
		if !f.Changed && v.IsSet(key) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key)))
		} else if f.Changed {
			v.Set(key, f.Value.String())
		}
	})
}

func GetIterations() int {
	if !v.IsSet(Iterations) {
		return defaultIterations
	}
	return v.GetInt(Iterations)
}

// GetCPU returns the single GOMAXPROCS value to test, or 0 for the common set.
func GetCPU() int {
	return v.GetInt(CPU)
}

func GetDuration() time.Duration {
	if !v.IsSet(Duration) {
		return defaultDuration
	}
	return v.GetDuration(Duration)
}

func GetBatchSize() int {
	if !v.IsSet(BatchSize) || v.GetInt(BatchSize) < 1 {
		return defaultBatchSize
	}
	return v.GetInt(BatchSize)
}

// GetNodeLimit returns the node budget handed to every container, 0 for none.
func GetNodeLimit() uint {
	return v.GetUint(NodeLimit)
}

func GetJSONExport() bool {
	return v.GetBool(JSONExport)
}

func GetJSONFile() string {
	if !v.IsSet(JSONFile) || v.GetString(JSONFile) == "" {
		return defaultJSONFile
	}
	return v.GetString(JSONFile)
}

func GetMarkdownTable() bool {
	return v.GetBool(MarkdownTable)
}

func GetProgress() bool {
	return v.GetBool(Progress)
}

func GetLogLevel() string {
	if !v.IsSet(LogLevel) {
		return "info"
	}
	return v.GetString(LogLevel)
}

// GetWorkloads returns the worker configurations to run.
func GetWorkloads() []Config {
	batch := GetBatchSize()
	workloads := []Config{
		{NumWorkers: 1, BatchSize: batch},
		{NumWorkers: 4, BatchSize: batch},
		{NumWorkers: 16, BatchSize: batch},
	}
	if v.GetBool(HighConcurrency) {
		workloads = append(workloads,
			Config{NumWorkers: 64, BatchSize: batch},
			Config{NumWorkers: 256, BatchSize: batch},
		)
	}
	return workloads
}
