package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("iter", 5, "")
	cmd.Flags().Duration("duration", time.Second, "")
	cmd.Flags().Int("batch", 64, "")
	cmd.Flags().Bool("high-concurrency", false, "")
	cmd.Flags().String("log-level", "info", "")
	return cmd
}

func TestDefaults(t *testing.T) {
	require.NoError(t, InitConfiguration(newCommand(), ""))

	assert.Equal(t, defaultIterations, GetIterations())
	assert.Equal(t, defaultDuration, GetDuration())
	assert.Equal(t, defaultBatchSize, GetBatchSize())
	assert.Equal(t, defaultJSONFile, GetJSONFile())
	assert.Equal(t, "info", GetLogLevel())
	assert.Zero(t, GetNodeLimit())
	assert.Len(t, GetWorkloads(), 3)
}

func TestFlagsOverride(t *testing.T) {
	cmd := newCommand()
	require.NoError(t, cmd.Flags().Set("iter", "2"))
	require.NoError(t, cmd.Flags().Set("high-concurrency", "true"))
	require.NoError(t, cmd.Flags().Set("batch", "8"))

	require.NoError(t, InitConfiguration(cmd, ""))

	assert.Equal(t, 2, GetIterations())
	workloads := GetWorkloads()
	assert.Len(t, workloads, 5)
	for _, w := range workloads {
		assert.Equal(t, 8, w.BatchSize)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("NATBENCH_DURATION", "250ms")
	t.Setenv("NATBENCH_LOG_LEVEL", "debug")

	cmd := newCommand()
	require.NoError(t, InitConfiguration(cmd, ""))

	assert.Equal(t, 250*time.Millisecond, GetDuration())
	assert.Equal(t, "debug", GetLogLevel())

	flagValue, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "debug", flagValue)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(file, []byte("iter: 7\nnode_limit: 128\n"), 0o644))

	require.NoError(t, InitConfiguration(newCommand(), file))
	assert.Equal(t, 7, GetIterations())
	assert.Equal(t, uint(128), GetNodeLimit())
}

func TestMissingConfigFile(t *testing.T) {
	err := InitConfiguration(newCommand(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
