// Package config provides file configuration for the rollcv CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Fields are pointers so
// the CLI can distinguish "unset" from an explicit zero; flags always win
// over file values.
type FileConfig struct {
	Split   SplitConfig   `toml:"split"`
	Preview PreviewConfig `toml:"preview"`
}

// SplitConfig maps fold-geometry settings.
type SplitConfig struct {
	NSplits *int    `toml:"n-splits"`
	Window  *string `toml:"window"`
	Horizon *string `toml:"horizon"`
	Gap     *int    `toml:"gap"`
}

// PreviewConfig maps renderer settings.
type PreviewConfig struct {
	Width     *int    `toml:"width"`
	Style     *string `toml:"style"`
	TrainChar *string `toml:"train-char"`
	TestChar  *string `toml:"test-char"`
	Color     *bool   `toml:"color"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}

		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}
