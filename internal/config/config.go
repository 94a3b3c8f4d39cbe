// Package config loads run settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultTrials is the number of games in a standard run.
const DefaultTrials = 10000

var ErrInvalidTrials = errors.New("trials must be positive")

// Config holds simulator settings.
type Config struct {
	Trials  int    `env:"TOAST_TRIALS" envDefault:"10000"`
	Seed    uint64 `env:"TOAST_SEED" envDefault:"0"`
	Verbose bool   `env:"TOAST_VERBOSE" envDefault:"false"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrials, c.Trials)
	}
	return nil
}
