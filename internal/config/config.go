package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the ambient settings of the forkbranch binary. None of them
// change which branch runs or what it prints.
type Config struct {
	LogLevel string `env:"FORKBRANCH_LOG_LEVEL" envDefault:"info"`
	Syslog   bool   `env:"FORKBRANCH_SYSLOG" envDefault:"true"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
