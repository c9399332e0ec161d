package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "America/Sao_Paulo", cfg.Server.Timezone)
	assert.Equal(t, "storage", cfg.Session.Backend)
	assert.Equal(t, "sessions/", cfg.Session.Prefix)
	assert.Equal(t, 20, cfg.Register.MaxUploadMB)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "database")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("REGISTER_MAX_UPLOAD_MB", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "database", cfg.Session.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Register.MaxUploadMB)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_TIMEZONE=UTC\nLOG_FORMAT=console\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_TIMEZONE")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Server.Timezone)
	assert.Equal(t, "console", cfg.Log.Format)
}
