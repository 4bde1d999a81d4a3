package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/i5heu/GoNatContainers/internal/container"
	"github.com/i5heu/GoNatContainers/internal/testbench"
	"github.com/i5heu/GoNatContainers/pkg/config"
	"github.com/i5heu/GoNatContainers/pkg/linked"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark and integrity-check the natural integer containers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfiguration(cmd, configFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(config.GetLogLevel())
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		if config.GetMarkdownTable() {
			sessions, err := loadReports(config.GetJSONFile())
			if err != nil {
				return err
			}
			return writeMarkdownTable(cmd.OutOrStdout(), sessions)
		}

		sessions, err := runSessions(cmd.Context(), getImplementations())
		if err != nil {
			return err
		}

		if config.GetJSONExport() {
			filename := config.GetJSONFile()
			if err := appendReports(filename, sessions); err != nil {
				return err
			}
			zap.S().Infow("wrote results", "file", filename, "sessions", len(sessions))
		}
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "configuration file")
	flags.Int("iter", 5, "Number of test iterations per workload")
	flags.Int("cpu", 0, "If non-zero, test only that GOMAXPROCS value; if 0, test common CPU/vCPU values up to runtime.NumCPU()")
	flags.Duration("duration", 5*time.Second, "Duration of each run")
	flags.Int("batch", 64, "Elements each worker inserts before draining its container")
	flags.Uint("node-limit", 0, "Node budget for every container, 0 for none")
	flags.Bool("json", false, "Append results as JSON to the file named by --jsonfile")
	flags.String("jsonfile", "test-results.json", "Path to the JSON results file")
	flags.Bool("markdown-table", false, "Output markdown table from the JSON results file and exit")
	flags.Bool("progress", false, "Display a progress bar with ETA")
	flags.Bool("high-concurrency", false, "Include high worker counts")
	flags.String("log-level", "info", "log level")
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if atomicLogLevel, err := zap.ParseAtomicLevel(level); err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}

// cpuSettings returns the GOMAXPROCS values to run with.
func cpuSettings(requested, trueCPUCount int) []int {
	if requested > 0 {
		if requested > trueCPUCount {
			requested = trueCPUCount
		}
		return []int{requested}
	}

	commonCPUs := []int{1, 2, 3, 4, 6, 8, 12, 16, 32, 48, 56, 64, 96, 128, 192, 256, 384, 512}
	var settings []int
	for _, v := range commonCPUs {
		if v <= trueCPUCount {
			settings = append(settings, v)
		}
	}
	return settings
}

// runSessions runs every implementation against every workload for each
// GOMAXPROCS setting and returns one report per setting.
func runSessions(ctx context.Context, impls []Implementation) ([]FullReport, error) {
	trueCPUCount := runtime.NumCPU()
	cpus := cpuSettings(config.GetCPU(), trueCPUCount)
	workloads := config.GetWorkloads()
	iterations := config.GetIterations()
	testDuration := config.GetDuration()

	var opts []linked.Option
	if limit := config.GetNodeLimit(); limit > 0 {
		opts = append(opts, linked.WithNodeLimit(limit))
	}

	var bar *progressbar.ProgressBar
	if config.GetProgress() {
		bar = progressbar.NewOptions(len(cpus)*len(workloads)*iterations*len(impls),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
	}

	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(0))

	var sessions []FullReport
	for _, n := range cpus {
		runtime.GOMAXPROCS(n)
		sysInfo := gatherSystemInfo()
		sysInfo.NumCPU = n
		sysInfo.TrueCPU = trueCPUCount
		sysInfo.SimulatedCPUCount = n

		zap.S().Infow("starting session", "gomaxprocs", n)

		var results []BenchmarkResult
		for _, cfg := range workloads {
			for iteration := 1; iteration <= iterations; iteration++ {
				for _, impl := range impls {
					runtime.GC()

					result, err := runOne(ctx, impl, cfg, testDuration, opts)
					if err != nil {
						return nil, fmt.Errorf("%s with %d workers: %w", impl.name, cfg.NumWorkers, err)
					}
					results = append(results, result)

					zap.L().Info("run finished",
						zap.String("implementation", impl.name),
						zap.Int("workers", cfg.NumWorkers),
						zap.Int("iteration", iteration),
						zap.Int64("inserted", result.NumInserted),
						zap.Int64("removed", result.NumRemoved),
						zap.Float64("throughput", result.Throughput),
					)

					if bar != nil {
						bar.Add(1)
					}
				}
			}
		}

		sessions = append(sessions, FullReport{
			SessionID:   uuid.New().String(),
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		})
	}
	return sessions, nil
}

func runOne(ctx context.Context, impl Implementation, cfg testbench.Config, testDuration time.Duration, opts []linked.Option) (BenchmarkResult, error) {
	res, err := testbench.RunTimedTest(ctx, func() (container.ValidationInterface, error) {
		return impl.newContainer(opts...)
	}, impl.order, cfg, testDuration)
	if err != nil {
		return BenchmarkResult{}, err
	}

	return BenchmarkResult{
		Implementation: impl.name,
		Order:          impl.order.String(),
		NumWorkers:     cfg.NumWorkers,
		BatchSize:      cfg.BatchSize,
		NumInserted:    res.Inserted,
		NumRemoved:     res.Removed,
		TestDuration:   testDuration.String(),
		ActualElapsed:  res.Elapsed.String(),
		Throughput:     float64(res.Ops()) / res.Elapsed.Seconds(),
		Timestamp:      time.Now().Unix(),
		GoVersion:      runtime.Version(),
	}, nil
}
