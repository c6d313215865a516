// Package config loads the AOI registry and pipeline tunables from a
// YAML file, falling back to built-in defaults.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/telluris/satdiff/internal/change"
	"github.com/telluris/satdiff/internal/geo"
)

// AOI is one named area of interest in the registry.
type AOI struct {
	Name        string   `yaml:"name"`
	Bounds      geo.Rect `yaml:"bounds"`
	Description string   `yaml:"description"`
}

// Config carries the pipeline tunables and the AOI registry.
type Config struct {
	// ChangeThreshold is the pixel difference above which a cell
	// counts as changed.
	ChangeThreshold int `yaml:"change_threshold"`

	// CloudThreshold is the maximum percent cloud cover accepted when
	// selecting scenes.
	CloudThreshold int `yaml:"cloud_threshold"`

	// DaysBack is the length of the acquisition lookback window.
	DaysBack int `yaml:"days_back"`

	// ThumbnailSize is the square edge length of output thumbnails.
	ThumbnailSize int `yaml:"thumbnail_size"`

	AOIs map[string]AOI `yaml:"aois"`
}

// Default returns the built-in configuration: stock tunables plus the
// bundled AOI registry.
func Default() Config {
	return Config{
		ChangeThreshold: change.DefaultThreshold,
		CloudThreshold:  20,
		DaysBack:        365,
		ThumbnailSize:   512,
		AOIs: map[string]AOI{
			"ladakh_base_1": {
				Name:        "Ladakh Forward Base",
				Bounds:      geo.Rect{MinLon: 78.0, MinLat: 31.0, MaxLon: 79.0, MaxLat: 32.0},
				Description: "Indian Army base region near the LAC with China.",
			},
			"spratly_reef": {
				Name:        "Spratly Island Reef",
				Bounds:      geo.Rect{MinLon: 111.9, MinLat: 10.8, MaxLon: 114.5, MaxLat: 11.5},
				Description: "Disputed reef in the South China Sea with artificial island building.",
			},
		},
	}
}

// Load reads a YAML configuration file over the defaults. Fields absent
// from the file keep their default values, registry entries merge by
// key, and a missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks every tunable and registry entry against its domain.
func (c Config) Validate() error {
	if c.ChangeThreshold < 0 || c.ChangeThreshold > 255 {
		return &change.InvalidParameterError{Name: "change_threshold", Value: c.ChangeThreshold, Min: 0, Max: 255}
	}
	if c.CloudThreshold < 0 || c.CloudThreshold > 100 {
		return &change.InvalidParameterError{Name: "cloud_threshold", Value: c.CloudThreshold, Min: 0, Max: 100}
	}
	if c.DaysBack < 1 {
		return &change.InvalidParameterError{Name: "days_back", Value: c.DaysBack, Min: 1, Max: 0}
	}
	if c.ThumbnailSize < 1 {
		return &change.InvalidParameterError{Name: "thumbnail_size", Value: c.ThumbnailSize, Min: 1, Max: 0}
	}
	for key, aoi := range c.AOIs {
		if err := aoi.Bounds.Validate(); err != nil {
			return fmt.Errorf("aoi %s: %w", key, err)
		}
	}
	return nil
}
