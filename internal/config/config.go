// Package config loads the viewer configuration from a TOML file, falling
// back to defaults when none exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all takeoff tool configuration.
type Config struct {
	Units  string       `toml:"units"`
	Viewer ViewerConfig `toml:"viewer"`
}

type ViewerConfig struct {
	MinZoom    float64 `toml:"min_zoom"`
	MaxZoom    float64 `toml:"max_zoom"`
	ZoomStep   float64 `toml:"zoom_step"`
	AutoReload bool    `toml:"auto_reload"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Units: "metric",
		Viewer: ViewerConfig{
			MinZoom:    0.1,
			MaxZoom:    10.0,
			ZoomStep:   1.25,
			AutoReload: true,
		},
	}
}

// Load reads config from the standard paths, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	if err := cfg.validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Units != "metric" && c.Units != "imperial" {
		return fmt.Errorf("invalid units %q (expected metric or imperial)", c.Units)
	}
	if c.Viewer.MinZoom <= 0 || c.Viewer.MaxZoom <= c.Viewer.MinZoom {
		return fmt.Errorf("invalid zoom range [%v, %v]", c.Viewer.MinZoom, c.Viewer.MaxZoom)
	}
	if c.Viewer.ZoomStep <= 1 {
		return fmt.Errorf("invalid zoom step %v (must be > 1)", c.Viewer.ZoomStep)
	}
	return nil
}

func configPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "takeoff", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".takeoff.toml"))
	}
	return paths
}
