// Package config loads the editor configuration from the user's ~/.vinerc.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable editor settings. Every field has a working
// default; a missing config file is not an error.
type Config struct {
	TabWidth     int    `yaml:"tab_width"`
	QuitWarnings int    `yaml:"quit_warnings"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		TabWidth:     4,
		QuitWarnings: 3,
		LogLevel:     "info",
	}
}

// DefaultPath returns ~/.vinerc, or just ".vinerc" when the home directory
// cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vinerc"
	}
	return filepath.Join(home, ".vinerc")
}

// Load reads path and overlays it onto the defaults. A missing file yields
// the defaults without error; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// clamp pulls nonsense values back to usable ones rather than failing; the
// editor must start even with a sloppy config.
func (c *Config) clamp() {
	if c.TabWidth < 1 {
		c.TabWidth = Default().TabWidth
	}
	if c.QuitWarnings < 1 {
		c.QuitWarnings = Default().QuitWarnings
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
}
