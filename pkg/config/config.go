// Package config loads qrterm's TOML configuration file.
//
// A missing file is not an error; every key has a default:
//
//	border = 4
//	level = "H"
//	autocaption = true
//
//	[theme]
//	light = "15"
//	dark = "0"
//
//	[server]
//	addr = ":8080"
//	redis_url = ""
//	cache_ttl = "24h"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/qrcode"
	"github.com/matzehuels/qrterm/pkg/render"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds every configurable setting.
type Config struct {
	Border      int    `toml:"border"`
	Level       string `toml:"level"`
	Autocaption bool   `toml:"autocaption"`
	Theme       Theme  `toml:"theme"`
	Server      Server `toml:"server"`
}

// Theme holds the two glyph colors.
type Theme struct {
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

// Server holds settings for `qrterm serve`.
type Server struct {
	Addr     string `toml:"addr"`
	RedisURL string `toml:"redis_url"`
	CacheTTL string `toml:"cache_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Border:      bitmap.DefaultBorder,
		Level:       "H",
		Autocaption: true,
		Theme: Theme{
			Light: render.DefaultLight,
			Dark:  render.DefaultDark,
		},
		Server: Server{
			Addr:     ":8080",
			CacheTTL: "24h",
		},
	}
}

// Load reads path on top of the defaults. A path that does not exist
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateBorder(c.Border); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "border")
	}
	if _, err := qrcode.ParseLevel(c.Level); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.Theme.Light); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme.light")
	}
	if err := errors.ValidateColor(c.Theme.Dark); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme.dark")
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses Server.CacheTTL. An empty value means no expiry.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Server.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Server.CacheTTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid server.cache_ttl: %q", c.Server.CacheTTL)
	}
	return d, nil
}

// Dir returns the config directory using the XDG standard
// (~/.config/qrterm/).
func Dir(appName string) (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
