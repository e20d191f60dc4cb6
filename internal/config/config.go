package config

import (
	"errors"
	"fmt"
	"os"
	"zarena/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for a table
type Config struct {
	loaded bool
	// Stakes is the starting credits of every seat
	Stakes          []int `yaml:"stakes" envconfig:"stakes"`
	InfiniteCredits bool  `yaml:"infiniteCredits" envconfig:"infinite_credits"`
	// Seed makes the deck replayable, 0 picks one from the clock
	Seed int64 `yaml:"seed" envconfig:"seed"`
	// Rounds limits how many rounds the driver plays, 0 plays until the table is finished
	Rounds int `yaml:"rounds" envconfig:"rounds"`
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}
}

var config Config

// Default returns the configuration used when nothing is set
func Default() Config {
	cfg := Config{
		Stakes: []int{1000, 1000, 1000},
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The yaml file is optional. Environment variables prefixed with ZARENA_ take precedence.
func Load() error {
	cfg := Default()

	configFile := util.Getenv("ZARENA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("zarena", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values a table can be built from
func (c Config) Validate() error {
	if len(c.Stakes) < 2 {
		return fmt.Errorf("at least two stakes are required, got %d", len(c.Stakes))
	}

	for i, stake := range c.Stakes {
		if stake <= 0 {
			return fmt.Errorf("stake %d must be positive, got %d", i, stake)
		}
	}

	if c.Rounds < 0 {
		return fmt.Errorf("rounds cannot be negative, got %d", c.Rounds)
	}

	return nil
}
