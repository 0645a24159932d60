package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "cuteplay"

// DefaultIcons is the icon style used when the config names none.
const DefaultIcons = "unicode"

// Search bar positions.
const (
	PositionBottom = "bottom"
	PositionTop    = "top"
)

type Config struct {
	Icons          string   `koanf:"icons"`           // "nerd", "unicode", or "none"
	LibrarySources []string `koanf:"library_sources"` // paths to scan for music library

	Searchbar SearchbarConfig `koanf:"searchbar"`
	Log       LogConfig       `koanf:"log"`
}

// SearchbarConfig controls where the search overlay sits on the Artists screen.
type SearchbarConfig struct {
	Position string `koanf:"position"` // "bottom" (default) or "top"
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `koanf:"file"`  // empty means $XDG_STATE_HOME/cuteplay/cuteplay.log
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

// Load reads ~/.config/cuteplay/config.toml then ./config.toml.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order, later ones overriding
// earlier ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	// Expand ~ in library_sources
	for i, src := range c.LibrarySources {
		c.LibrarySources[i] = expandPath(src)
	}

	c.Icons = strings.ToLower(c.Icons)
	if c.Icons == "" {
		c.Icons = DefaultIcons
	}

	switch strings.ToLower(c.Searchbar.Position) {
	case PositionTop:
		c.Searchbar.Position = PositionTop
	default:
		c.Searchbar.Position = PositionBottom
	}

	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// SearchbarOnTop reports whether the search bar is aligned to the top.
func (c *Config) SearchbarOnTop() bool {
	return c.Searchbar.Position == PositionTop
}

// HasLibrarySources returns true if at least one library source is configured.
func (c *Config) HasLibrarySources() bool {
	return len(c.LibrarySources) > 0
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cuteplay/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
