package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := searchCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"star", "wars"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "tozeur"))
	require.True(t, strings.HasPrefix(lines[2], "tataouine"))
}

func TestSearchCommand_Category(t *testing.T) {
	var out bytes.Buffer
	cmd := searchCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "Oasis"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
}

func TestLoadConfig_FallsBackToEnv(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, "data/guide.db", cfg.Store.Path)

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: memory\n"), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, storeDriverMemory, cfg.Store.Driver)
	require.Equal(t, "data/guide.db", cfg.Store.Path)
}

func TestGetStore(t *testing.T) {
	ctx := context.Background()

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	cfg.Store.Path = filepath.Join(t.TempDir(), "guide.db")

	// opening migrates, so the first write succeeds on a fresh file
	st, closeStore := getStore(ctx, cfg)
	require.NoError(t, st.Set(ctx, "notificationsEnabled", "true"))
	closeStore()

	// migrating an up to date database is a no-op
	st, closeStore = getStore(ctx, cfg)
	defer closeStore()
	v, found, err := st.Get(ctx, "notificationsEnabled")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "true", v)

	cfg.Store.Driver = storeDriverMemory
	mem, closeMem := getStore(ctx, cfg)
	defer closeMem()
	_, found, err = mem.Get(ctx, "notificationsEnabled")
	require.NoError(t, err)
	require.False(t, found)
}
