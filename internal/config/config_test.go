package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendBolt, cfg.Store.Backend)
	assert.Equal(t, "furnishing-store", cfg.Store.Key)
	assert.Equal(t, 30*time.Second, cfg.Store.RetryInterval)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Empty(t, cfg.Database.URL)
	assert.False(t, cfg.HTTP.EnablePprof)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("STORE_KEY", "tenant-a")
	t.Setenv("PERSIST_RETRY_INTERVAL", "7")
	t.Setenv("MONITOR_INTERVAL", "250ms")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "tenant-a", cfg.Store.Key)
	assert.Equal(t, 7*time.Second, cfg.Store.RetryInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.MonitorInterval)
	assert.Equal(t, "9090", cfg.HTTP.Port)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
