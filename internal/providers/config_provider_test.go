package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbd/internal/structures"
)

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	body := fmt.Sprintf(`webServer:
  host: 127.0.0.1
  port: 8080
logger:
  level: info
  mode: 0644
  dir: %s
storage:
  dir: %s
birthday:
  horizonDays: 30
schedule:
  warmInterval: 5m
  refreshInterval: 1h
  retry:
    initialDelay: 1s
    maxDelay: 30s
    maxTries: 5
    timeout: 2m
cache:
  enabled: true
  size: 8
  ttl: 6m
metrics:
  enabled: false
`, dir, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigProvider_LoadsAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := writeTestConfig(t, dir)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "BirthdayBotDaemon", conf.AppName)
	assert.Equal(t, path, conf.Path)
	assert.True(t, conf.Debug)
	assert.Equal(t, 8080, conf.WebServer.Port)
	assert.Equal(t, 30, conf.Birthday.HorizonDays)
	assert.Equal(t, uint(5), conf.Schedule.Retry.MaxTries)
	assert.True(t, conf.Cache.Enabled)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
