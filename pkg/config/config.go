// Package config provides configuration loading and management for
// simplekrige. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"simplekrige/pkg/kernel"
	"simplekrige/pkg/simulation"
)

// Point is a prediction target location as written in the config file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Mean is the known constant mean of the process (simple-kriging
	// assumption: the mean is known, not estimated).
	Mean float64 `yaml:"mean"`

	// Covariance holds the Matérn parameters shared by the simulator and
	// the kriging engine.
	Covariance kernel.Parameters `yaml:"covariance"`

	// Simulation parameters for the synthetic observation draw.
	Simulation struct {
		// Count is the number of synthetic observations.
		Count int `yaml:"count"`

		// Seed seeds the random source for reproducible draws.
		Seed uint64 `yaml:"seed"`

		// MinSeparation is the smallest allowed distance between sampled
		// locations, keeping the covariance matrix well conditioned.
		MinSeparation float64 `yaml:"minSeparation"`

		// Domain is the rectangle observations are sampled from.
		Domain simulation.Box `yaml:"domain"`
	} `yaml:"simulation"`

	// Prediction parameters
	Prediction struct {
		// Targets lists individual prediction locations.
		Targets []Point `yaml:"targets"`

		// Grid, when enabled, sweeps a rectangular lattice of targets.
		Grid struct {
			Enabled bool    `yaml:"enabled"`
			MinX    float64 `yaml:"minX"`
			MaxX    float64 `yaml:"maxX"`
			MinY    float64 `yaml:"minY"`
			MaxY    float64 `yaml:"maxY"`
			Nx      int     `yaml:"nx"`
			Ny      int     `yaml:"ny"`
		} `yaml:"grid"`

		// Workers caps the goroutines used for the grid sweep;
		// 0 means all available cores.
		Workers int `yaml:"workers"`
	} `yaml:"prediction"`

	// Output parameters
	Output struct {
		// Verbose controls the level of console output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Mean = 0
	cfg.Covariance = kernel.Parameters{
		Sill:       1.0,
		Range:      0.25,
		Smoothness: 0.5,
		Nugget:     0.05,
	}

	cfg.Simulation.Count = 100
	cfg.Simulation.Seed = 42
	cfg.Simulation.MinSeparation = 1e-3
	cfg.Simulation.Domain = simulation.Box{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

	cfg.Prediction.Targets = []Point{{X: 0.5, Y: 0.5}}
	cfg.Prediction.Grid.MinX = 0
	cfg.Prediction.Grid.MaxX = 1
	cfg.Prediction.Grid.MinY = 0
	cfg.Prediction.Grid.MaxY = 1
	cfg.Prediction.Grid.Nx = 11
	cfg.Prediction.Grid.Ny = 11
	cfg.Prediction.Workers = 0

	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
