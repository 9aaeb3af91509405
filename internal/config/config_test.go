package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017", cfg.Storage.URI)
	require.Equal(t, "app_db", cfg.Storage.Database)
	require.Equal(t, DriverMongo, cfg.Storage.Driver)
	require.Equal(t, 10*time.Second, cfg.Storage.Timeout)
	require.Equal(t, "0.0.0.0:8000", cfg.Addr())
	require.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db.internal:27017")
	t.Setenv("DATABASE_NAME", "portfolio")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://db.internal:27017", cfg.Storage.URI)
	require.Equal(t, "portfolio", cfg.Storage.Database)
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "localhost", cfg.Redis.Host)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err := LoadConfig()
	require.Error(t, err)
}
