// Package config provides environment configuration for usagestats.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Command-line flags take
// precedence over every field.
type Config struct {
	// Timezone is an IANA zone name used to render timestamps. Empty means
	// the local zone.
	Timezone string `env:"USAGESTATS_TZ"`

	// NoColor follows https://no-color.org: any non-empty value disables
	// styled output.
	NoColor string `env:"NO_COLOR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ColorDisabled reports whether NO_COLOR is set.
func (c Config) ColorDisabled() bool {
	return c.NoColor != ""
}

// Location resolves name, falling back to the configured timezone and then
// to the local zone.
func (c Config) Location(name string) (*time.Location, error) {
	if name == "" {
		name = c.Timezone
	}
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
