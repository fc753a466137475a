package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tunisiaguide/internal/config"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
store:
  path: /tmp/guide-test.db
session:
  delay: 250ms
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "/tmp/guide-test.db", cfg.Store.Path)
	require.Equal(t, 250*time.Millisecond, cfg.Session.Delay)

	// untouched fields fall back to their defaults
	require.Equal(t, 6, cfg.Session.MinPasswordLength)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  minPasswordLength: 8\n"), 0o600))
	t.Setenv("SESSION_MIN_PASSWORD_LENGTH", "10")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Session.MinPasswordLength)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, time.Second, cfg.Session.Delay)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "data/guide.db", cfg.Store.Path)
}
