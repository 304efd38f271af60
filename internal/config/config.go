// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the menu data file locations and the metrics toggle.
type Config struct {
	Data struct {
		Ingredients string `yaml:"ingredients"`
		Bases       string `yaml:"bases"`
		Sides       string `yaml:"sides"`
	} `yaml:"data"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Data.Ingredients = "data/ingredients.txt"
	cfg.Data.Bases = "data/bases.txt"
	cfg.Data.Sides = "data/sides.txt"
	cfg.Metrics.Enabled = true
	return cfg
}

// Load reads the configuration at path, applying defaults for absent keys.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
