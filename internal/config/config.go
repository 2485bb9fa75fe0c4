// Package config loads the application-level YAML configuration. Unlike the
// per-recording session documents, this file holds operator preferences that
// apply across recordings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// DataDir overrides where session documents and the export history
	// database live.
	DataDir string `yaml:"data_dir"`

	// RemoveThreshold is the maximum distance, in seconds, between a
	// removal request and a marker for the marker to be deleted.
	RemoveThreshold float64 `yaml:"marker_remove_threshold"`

	// SpeedPresets are the playback multipliers cycled through in the UI.
	SpeedPresets []float64 `yaml:"speed_presets"`

	// Theme is the default theme for new sessions ("dark" or "light").
	Theme string `yaml:"theme"`

	// FFprobePath locates the ffprobe binary used to inspect videos.
	FFprobePath string `yaml:"ffprobe_path"`

	// ExportCharts enables the per-foot overview chart on export.
	ExportCharts bool `yaml:"export_charts"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RemoveThreshold: 0.05,
		SpeedPresets:    []float64{0.25, 0.5, 1, 1.5, 2},
		Theme:           "dark",
		FFprobePath:     "ffprobe",
		ExportCharts:    true,
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "gaitsync", "gaitsync.yaml")
}

// Load reads the config at path, overlaying it on the defaults. A missing
// file is not an error; a malformed one is, but the returned config is still
// usable (the defaults), so the caller can log and continue.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.RemoveThreshold <= 0 {
		c.RemoveThreshold = Default().RemoveThreshold
	}
	presets := c.SpeedPresets[:0]
	for _, p := range c.SpeedPresets {
		if p > 0 {
			presets = append(presets, p)
		}
	}
	c.SpeedPresets = presets
	if len(c.SpeedPresets) == 0 {
		c.SpeedPresets = Default().SpeedPresets
	}
	c.Theme = strings.TrimSpace(strings.ToLower(c.Theme))
	if c.Theme != "light" {
		c.Theme = "dark"
	}
	if strings.TrimSpace(c.FFprobePath) == "" {
		c.FFprobePath = "ffprobe"
	}
	if c.DataDir != "" {
		c.DataDir = filepath.Clean(c.DataDir)
	}
}
