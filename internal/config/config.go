// Package config loads editor settings from the user's configuration
// directory: a settings.toml file for declarative options and an
// optional init.lua script that can adjust them programmatically. Both
// are optional; a missing directory yields the defaults.
package config

import (
	"os"
	"path/filepath"
)

// Config holds the editor's user-tunable settings.
type Config struct {
	// Theme is a path to a YAML theme file. Empty selects the built-in
	// theme. Relative paths resolve against the config directory.
	Theme string `toml:"theme"`

	// TabWidth is how many spaces the tab key inserts.
	TabWidth int `toml:"tab_width"`

	// LineNumbers toggles the gutter.
	LineNumbers bool `toml:"line_numbers"`
}

// Default returns the configuration used when no files are present.
func Default() Config {
	return Config{
		TabWidth:    4,
		LineNumbers: true,
	}
}

// Dir returns the user configuration directory for the editor.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "vigor")
}

// Load reads settings.toml and then runs init.lua from dir, the script
// seeing and overriding the file's values. Missing files are fine;
// malformed ones surface as errors alongside the settings read so far.
func Load(dir string) (Config, error) {
	cfg := Default()
	if dir == "" {
		return cfg, nil
	}

	if err := loadTOML(filepath.Join(dir, "settings.toml"), &cfg); err != nil {
		return cfg, err
	}
	if err := runInitScript(filepath.Join(dir, "init.lua"), &cfg); err != nil {
		return cfg, err
	}

	cfg.resolvePaths(dir)
	return cfg, nil
}

// resolvePaths anchors relative file settings at the config directory.
func (c *Config) resolvePaths(dir string) {
	if c.Theme != "" && !filepath.IsAbs(c.Theme) {
		c.Theme = filepath.Join(dir, c.Theme)
	}
}
