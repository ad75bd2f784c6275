package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath points at a config file or a directory of config files
	// (project model, plugin parameters, overrides).
	ConfigPath string
	// ComponentsDir is the shared root all serialized file paths are made
	// relative to.
	ComponentsDir string
	// Format selects the loader: "hcl" or "yaml".
	Format string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.ComponentsDir == "" {
		return nil, errors.New("ComponentsDir is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "hcl"
	}
	if cfg.Format != "hcl" && cfg.Format != "yaml" {
		return nil, fmt.Errorf("unsupported config format %q: must be 'hcl' or 'yaml'", cfg.Format)
	}
	return &cfg, nil
}
