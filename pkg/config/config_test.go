package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/quotes/pkg/sources"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, sources.DefaultEndpoint, cfg.Source.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Source.Timeout)
	assert.Equal(t, 2.0, cfg.Source.RateLimit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(DataDir(), "favourites.json"), cfg.Storage.Favourites)
	assert.Equal(t, filepath.Join(DataDir(), "history.db"), cfg.Storage.History)
	assert.True(t, strings.HasSuffix(cfg.Log.File, "quotes.log"))
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
source:
  endpoint: http://localhost:9999/quote
  timeout: 5s
storage:
  favourites: /tmp/favs.json
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/quote", cfg.Source.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "/tmp/favs.json", cfg.Storage.Favourites)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("QUOTES_LOG_LEVEL", "warn")
	t.Setenv("QUOTES_SOURCE_RATE_LIMIT", "0.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0.5, cfg.Source.RateLimit)
}

func TestLoadWithOverridesWinsOverEnv(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("QUOTES_LOG_LEVEL", "warn")

	cfg, err := LoadWithOverrides(path, map[string]any{"log.level": "debug"})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadWithOverridesValidated(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	_, err := LoadWithOverrides(path, map[string]any{"log.level": "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level must be one of: debug info warn error")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, `
source:
  endpoint: not-a-url
log:
  level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.endpoint must be a valid URL")
	assert.Contains(t, err.Error(), "log.level must be one of: debug info warn error")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "source.rate_limit", envKey("QUOTES_SOURCE_RATE_LIMIT"))
	assert.Equal(t, "log.max_backups", envKey("QUOTES_LOG_MAX_BACKUPS"))
	assert.Equal(t, "storage.favourites", envKey("QUOTES_STORAGE_FAVOURITES"))
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "source.endpoint", formatFieldPath("Config.Source.Endpoint"))
	assert.Equal(t, "field", formatFieldPath("Field"))
}
