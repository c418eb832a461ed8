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
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, "https://api.mojang.com", cfg.Mojang.BaseURL)
	assert.Equal(t, 4, cfg.Resolver.Concurrency)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
storage:
  type: redis
redis:
  url: redis://cache:6379
stats:
  dir: /srv/world/stats
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "redis://cache:6379", cfg.Redis.URL)
	assert.Equal(t, "/srv/world/stats", cfg.Stats.Dir)
	// Untouched sections keep their defaults
	assert.Equal(t, "statboard", cfg.Mojang.UserAgent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STATBOARD_PORT", "7070")
	t.Setenv("STATBOARD_STORAGE_TYPE", "redis")
	t.Setenv("STATBOARD_STATS_DIR", "/srv/stats")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Type)
	assert.Equal(t, "/srv/stats", cfg.Stats.Dir)
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STATBOARD_STORAGE_TYPE", "postgres")

	_, err := Load("")
	assert.Error(t, err)
}
