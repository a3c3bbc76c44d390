package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"HEROES_STORE", "HEROES_DATABASE_FILE", "HEROES_SEED",
			"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
		} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()
		require.Equal(t, Config{
			Store:               StoreMemory,
			DatabaseFile:        "heroes.db",
			Seed:                true,
			Env:                 "dev",
			LogLevel:            "info",
			LogFormat:           "json",
			Port:                8080,
			ShutdownGracePeriod: 10 * time.Second,
		}, cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HEROES_STORE", "sqlite")
		t.Setenv("HEROES_DATABASE_FILE", "/data/heroes.db")
		t.Setenv("HEROES_SEED", "false")
		t.Setenv("PORT", "9090")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "3")

		cfg := LoadConfig()
		require.Equal(t, StoreSQLite, cfg.Store)
		require.Equal(t, "/data/heroes.db", cfg.DatabaseFile)
		require.False(t, cfg.Seed)
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	})

	t.Run("unparsable values fall back", func(t *testing.T) {
		t.Setenv("HEROES_SEED", "maybe")
		t.Setenv("PORT", "eighty")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

		cfg := LoadConfig()
		require.True(t, cfg.Seed)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	base := Config{Store: StoreMemory, Port: 8080}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"memory", func(*Config) {}, ""},
		{"sqlite with file", func(c *Config) { c.Store = StoreSQLite; c.DatabaseFile = "x.db" }, ""},
		{"sqlite without file", func(c *Config) { c.Store = StoreSQLite }, "HEROES_DATABASE_FILE"},
		{"unknown store", func(c *Config) { c.Store = "redis" }, "unknown HEROES_STORE"},
		{"bad port", func(c *Config) { c.Port = 0 }, "PORT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
