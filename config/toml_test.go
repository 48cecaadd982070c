package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rollcv/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_MissingFile verifies a missing file yields a zero config
// without error.
func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(t, err)
	assert.Nil(t, cfg.Split.NSplits)
	assert.Nil(t, cfg.Preview.Style)
}

// TestLoadConfig_EmptyPath verifies an empty path is rejected.
func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := config.LoadConfig("")
	assert.Error(t, err)
}

// TestLoadConfig_ParsesTables verifies both tables round-trip and unset
// keys stay nil.
func TestLoadConfig_ParsesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[split]
n-splits = 10
window = "0.6"
gap = 5

[preview]
style = "bar"
width = 60
color = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Split.NSplits)
	assert.Equal(t, 10, *cfg.Split.NSplits)
	require.NotNil(t, cfg.Split.Window)
	assert.Equal(t, "0.6", *cfg.Split.Window)
	assert.Nil(t, cfg.Split.Horizon, "unset keys stay nil")
	require.NotNil(t, cfg.Split.Gap)
	assert.Equal(t, 5, *cfg.Split.Gap)

	require.NotNil(t, cfg.Preview.Style)
	assert.Equal(t, "bar", *cfg.Preview.Style)
	require.NotNil(t, cfg.Preview.Width)
	assert.Equal(t, 60, *cfg.Preview.Width)
	require.NotNil(t, cfg.Preview.Color)
	assert.True(t, *cfg.Preview.Color)
}

// TestLoadConfig_BadTOML verifies malformed files surface a decode error.
func TestLoadConfig_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[split\nnope"), 0o644))

	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

// TestDefaultConfigPath verifies the XDG override is honored.
func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "rollcv", "config.toml"), config.DefaultConfigPath())
}
