// Package config loads optional hbdtex.toml configuration files.
//
// Configuration supplies defaults only: command-line flags always win
// over the file, and the file wins over the built-in defaults.
//
// Example file:
//
//	[render]
//	separate_boxes = true
//	prologue = "preamble.tex"
//
//	[cache]
//	enabled = true
//	ttl_hours = 168
//
//	[preview]
//	color = false
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hbdtex/pkg/errors"
)

// FileName is the config file looked up next to the working directory
// when no explicit path is given.
const FileName = "hbdtex.toml"

// Config holds every configurable setting.
type Config struct {
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	Preview PreviewConfig `toml:"preview"`
}

// RenderConfig controls LaTeX output.
type RenderConfig struct {
	// SeparateBoxes renders vertical-box columns with doubled rule
	// separators.
	SeparateBoxes bool `toml:"separate_boxes"`
	// Prologue is a path to a LaTeX preamble replacing the built-in one.
	Prologue string `toml:"prologue"`
}

// CacheConfig controls the compile cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	// Dir overrides the default cache directory under the user cache dir.
	Dir string `toml:"dir"`
	// TTLHours bounds the lifetime of cache entries; 0 keeps them forever.
	TTLHours int `toml:"ttl_hours"`
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	Color bool `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preview: PreviewConfig{Color: true},
	}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Discover loads an explicit config path if given, otherwise the
// default file in the current directory when present, otherwise the
// built-in defaults.
func Discover(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := filepath.Join(".", FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// CacheDir returns the configured cache directory, defaulting to
// hbdtex's directory under the user cache dir.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "resolve user cache dir")
	}
	return filepath.Join(base, "hbdtex"), nil
}
