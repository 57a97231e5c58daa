package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("BARSTATUS_APP_NAME", "barstatus-test")

	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestLoadCreatesDefaultConfigWhenMissing(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Load()
	require.NoError(t, err)

	path, err := GetConfigFilePath()
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}

func TestLoadVersionIncreasesOnReload(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Load()
	require.NoError(t, err)
	v1 := m.Version()

	dir, _ := GetConfigDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("font_size = 20\n"), 0o644))

	_, err = m.Load()
	require.NoError(t, err)
	require.Greater(t, m.Version(), v1)
}
