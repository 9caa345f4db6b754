package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the search flags for YAML-driven runs. Flags set on
// the command line override config values.
type fileConfig struct {
	Graph      string  `yaml:"graph"`
	Origin     string  `yaml:"origin"`
	MinNights  int     `yaml:"min_nights"`
	MaxNights  int     `yaml:"max_nights"`
	MaxFlights int     `yaml:"max_flights"`
	MaxCost    float64 `yaml:"max_cost"`
	Parallel   int     `yaml:"parallel"`
	Timeout    string  `yaml:"timeout"`
	Out        string  `yaml:"out"`
}

// loadFileConfig reads and parses a YAML search configuration.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// timeoutDuration parses the config's timeout field; empty means none.
func (c fileConfig) timeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse config timeout %q: %w", c.Timeout, err)
	}

	return d, nil
}
