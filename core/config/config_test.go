package config_test

import (
	"testing"

	"thermodb/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "databases", cfg.Storage.Bucket)
	assert.Equal(t, "phreeqc.dat", cfg.Catalog.Source)
	assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
	assert.False(t, cfg.Catalog.FromStorage)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "llnl.dat")
	t.Setenv("CATALOG_FROM_STORAGE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "llnl.dat", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.FromStorage)
	assert.Equal(t, "debug", cfg.Log.Level)
}
