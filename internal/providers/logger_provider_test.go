package providers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogProvider_WritesPerTypeFiles(t *testing.T) {
	dir := t.TempDir()
	conf := validTestConfig(dir)

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "started")
	logger.Warnf(TypeTask, "task %s retried", "refresh")

	appLog, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(appLog), "started")

	taskLog, err := os.ReadFile(filepath.Join(dir, "task.log"))
	require.NoError(t, err)
	assert.Contains(t, string(taskLog), "task refresh retried")

	// Command and admin files exist even before anything logs to them.
	for _, name := range []string{"command.log", "admin.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}

func TestLogProvider_LevelFiltersLowerSeverity(t *testing.T) {
	dir := t.TempDir()
	conf := validTestConfig(dir)
	conf.Logger.Level = "warn"

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "suppressed line")
	logger.Warnf(TypeApp, "kept line")

	appLog, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(appLog), "suppressed line")
	assert.Contains(t, string(appLog), "kept line")
}

func TestLogProvider_InvalidLevel(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Logger.Level = "shouting"

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestLogProvider_UnwritableDir(t *testing.T) {
	conf := validTestConfig(filepath.Join(t.TempDir(), "missing", "deeper"))

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
