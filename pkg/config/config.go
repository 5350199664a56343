// Package config loads user defaults from ~/.config/visnet/config.toml.
//
// Every field is optional; missing values fall back to the built-in
// defaults, and a missing file is not an error. CLI flags override config
// values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/visnet/pkg/errors"
)

// Config holds user-level defaults for page generation and caching.
type Config struct {
	// Page defaults applied when flags are not given.
	Height    string `toml:"height"`
	Width     string `toml:"width"`
	BgColor   string `toml:"bgcolor"`
	FontColor string `toml:"font_color"`
	Resources string `toml:"resources"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the asset cache backend.
type CacheConfig struct {
	// Backend is "file", "redis" or "none". Empty means "file".
	Backend string `toml:"backend"`

	// Dir overrides the file cache location (default ~/.cache/visnet).
	Dir string `toml:"dir"`

	// Redis connection settings, used when Backend is "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Height:    "600px",
		Width:     "100%",
		BgColor:   "#ffffff",
		Resources: errors.ResourcesLocal,
		Cache:     CacheConfig{Backend: "file"},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "visnet", "config.toml"), nil
}

// Load reads the config file at path, layering it over [Default]. An
// empty path uses [Path]; a missing file returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidOptions, err, "parse %s", path)
	}
	if err := errors.ValidateResourceMode(cfg.Resources); err != nil {
		return cfg, err
	}
	return cfg, nil
}
