package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults that can be kept in a YAML file
type Config struct {
	Workers   int    `yaml:"workers"`
	Format    string `yaml:"format"`
	Progress  bool   `yaml:"progress"`
	NameWidth int    `yaml:"name_width"`
	Verbose   bool   `yaml:"verbose"`
	Quiet     bool   `yaml:"quiet"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Format: "text",
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}
