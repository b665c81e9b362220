package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data/data.json", cfg.DataPath)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 26, cfg.RecurWeeks)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCHEDULER_ENV", "production")
	t.Setenv("SCHEDULER_DATA_PATH", "/tmp/slots.json")
	t.Setenv("SCHEDULER_FETCH_TIMEOUT", "3s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/slots.json", cfg.DataPath)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "LOG_LEVEL: debug\nDATA_PATH: fixtures/week.ics\nRECUR_WEEKS: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scheduler.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "fixtures/week.ics", cfg.DataPath)
	assert.Equal(t, 4, cfg.RecurWeeks)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scheduler.yaml"), []byte("LOG_LEVEL: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
