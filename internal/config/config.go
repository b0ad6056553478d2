// Package config loads the YAML settings used by the command line tool.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Pipeline steps, applied in order by "run".
const (
	StepPrune      = "prune"
	StepMinimize   = "minimize"
	StepReverse    = "reverse"
	StepBrzozowski = "brzozowski"
)

var knownSteps = []string{StepPrune, StepMinimize, StepReverse, StepBrzozowski}

// Config is the structure of a pipeline file.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Pipeline []string `yaml:"pipeline"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Pipeline: []string{StepMinimize},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown pipeline steps.
func (c *Config) Validate() error {
	for _, step := range c.Pipeline {
		if !slices.Contains(knownSteps, step) {
			return fmt.Errorf("unknown pipeline step %q (want one of %v)", step, knownSteps)
		}
	}
	return nil
}
