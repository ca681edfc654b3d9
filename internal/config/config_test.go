package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".vinerc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysValues(t *testing.T) {
	path := writeConfig(t, "tab_width: 8\nquit_warnings: 1\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.TabWidth)
	require.Equal(t, 1, cfg.QuitWarnings)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tab_width: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
	require.Equal(t, Default().QuitWarnings, cfg.QuitWarnings)
}

func TestLoad_ClampsSillyValues(t *testing.T) {
	path := writeConfig(t, "tab_width: 0\nquit_warnings: -2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().TabWidth, cfg.TabWidth)
	require.Equal(t, Default().QuitWarnings, cfg.QuitWarnings)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "tab_width: [oops\n")

	_, err := Load(path)
	require.Error(t, err)
}
