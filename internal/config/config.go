// Package config handles global jot configuration.
//
// The notes directory is resolved once at startup and passed explicitly into
// every component; nothing below the CLI reads configuration on its own.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global jot configuration file.
type Config struct {
	// Directory is the notes directory managed by jot.
	Directory string `toml:"directory"`

	// Editor is the editor command for editing notes. Overrides $JOT_EDITOR
	// and $EDITOR when set.
	Editor string `toml:"editor"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output, as an ANSI color
	// code ("0" to "255") or hex color ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme for rendered code blocks.
	CodeTheme string `toml:"code_theme"`
}

// Load reads the configuration from the default location. A missing file is
// not an error; it yields a zero config.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file path,
// ~/.config/jot/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "jot", "config.toml")
}

// ResolveDirectory picks the notes directory: the --dir flag, then $JOT_DIR,
// then the config file.
func (c *Config) ResolveDirectory(flagValue string) (string, error) {
	switch {
	case flagValue != "":
		return flagValue, nil
	case os.Getenv("JOT_DIR") != "":
		return os.Getenv("JOT_DIR"), nil
	case c.Directory != "":
		return expandHome(c.Directory), nil
	}
	return "", fmt.Errorf(`no notes directory configured

Either:
  1. Use --dir /path/to/notes
  2. Set $JOT_DIR
  3. Set 'directory' in %s`, DefaultPath())
}

// ResolveEditor picks the editor command: config file, then $JOT_EDITOR,
// then $EDITOR, then vi.
func (c *Config) ResolveEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	if e := os.Getenv("JOT_EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
