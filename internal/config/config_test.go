package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Seed.Enabled)
	assert.True(t, cfg.CORS.AllowAllOrigins())
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte("server:\n  port: 4000\n  mode: debug\nlog:\n  level: debug\nseed:\n  enabled: false\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	t.Setenv("PORT", "5000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowAllOrigins())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_Mode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Mode = "loud"
	assert.Error(t, cfg.Validate())
}
