// Package config loads and saves the dashboard configuration: the home
// timezone, suggestion defaults, and the tracked city list.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
)

// CityEntry is one tracked city. Pinned cities are preferred when building
// the default selection for suggestions.
type CityEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Country  string `yaml:"country,omitempty"`
	Timezone string `yaml:"timezone"`
	Pinned   bool   `yaml:"pinned,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	// HomeTimezone is the IANA zone suggestions are expressed in unless a
	// query overrides it.
	HomeTimezone string `yaml:"home_timezone"`

	// DurationMinutes is the default desired meeting length.
	DurationMinutes int `yaml:"duration_minutes"`

	// StepMinutes is the default slide between candidate starts.
	StepMinutes int `yaml:"step_minutes"`

	// MaxSuggestions caps the ranked list.
	MaxSuggestions int `yaml:"max_suggestions"`

	// Cities is the tracked city list.
	Cities []CityEntry `yaml:"cities"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		HomeTimezone:    "America/New_York",
		DurationMinutes: 30,
		StepMinutes:     5,
		MaxSuggestions:  5,
		Cities: []CityEntry{
			{ID: "new-york", Name: "New York", Country: "United States", Timezone: "America/New_York", Pinned: true},
			{ID: "london", Name: "London", Country: "United Kingdom", Timezone: "Europe/London", Pinned: true},
			{ID: "tokyo", Name: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
		},
	}
}

// Load reads the configuration at path. A missing file is a first run: the
// default configuration is written there and returned. Zero-valued numeric
// fields are backfilled with defaults so a sparse file stays valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if saveErr := cfg.Save(path); saveErr != nil {
			return nil, fmt.Errorf("config: writing first-run default: %w", saveErr)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	def := Default()
	if cfg.HomeTimezone == "" {
		cfg.HomeTimezone = def.HomeTimezone
	}
	if cfg.DurationMinutes <= 0 {
		cfg.DurationMinutes = def.DurationMinutes
	}
	if cfg.StepMinutes <= 0 {
		cfg.StepMinutes = def.StepMinutes
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = def.MaxSuggestions
	}
	return cfg, nil
}

// Save writes the configuration to path with 0600 permissions, creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// SelectedCities returns the pinned cities, falling back to every tracked
// city when nothing is pinned.
func (c *Config) SelectedCities() []overlap.City {
	var pinned, all []overlap.City
	for _, e := range c.Cities {
		city := overlap.City{ID: e.ID, Name: e.Name, Country: e.Country, Timezone: e.Timezone}
		all = append(all, city)
		if e.Pinned {
			pinned = append(pinned, city)
		}
	}
	if len(pinned) > 0 {
		return pinned
	}
	return all
}
