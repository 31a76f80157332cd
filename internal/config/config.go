// Package config loads editor settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable settings.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig controls text display and editing behavior.
type EditorConfig struct {
	// TabWidth is the number of columns between tab stops.
	TabWidth int `toml:"tab_width"`

	// SoftWrap reflows long lines at the screen edge.
	SoftWrap bool `toml:"soft_wrap"`

	// ShowDiffGutter draws the per-line diff markers.
	ShowDiffGutter bool `toml:"show_diff_gutter"`
}

// LogConfig controls the log output.
type LogConfig struct {
	// File receives the structured log. Empty disables logging.
	File string `toml:"file"`

	// Level is debug, info, warn or error.
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:       4,
			SoftWrap:       true,
			ShowDiffGutter: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// malformed TOML or invalid values are.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quire", "config.toml")
}

func (c Config) validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width %d out of range [1,16]", c.Editor.TabWidth)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown", c.Log.Level)
	}
	return nil
}
