package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "storeorders.db", cfg.SQLite.Path)
	require.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	require.True(t, cfg.Logger.DisableStacktrace)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "3")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "5433", cfg.Postgres.Port)
	require.Equal(t, 3, cfg.Postgres.MaxOpenConns)
	require.True(t, cfg.Logger.DisableCaller)
}

func TestLoadEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "many")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "nope")

	cfg := LoadEnv()

	require.Equal(t, 5, cfg.Postgres.MaxIdleConns)
	require.True(t, cfg.Logger.DisableStacktrace)
}
