package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Dow price source configuration. An empty source list selects the
	// built-in mirrors.
	DJIASources []string      `env:"DJIA_SOURCES" envSeparator:","`
	DJIATimeout time.Duration `env:"DJIA_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.DJIATimeout <= 0 {
		return nil, errors.New("DJIA_TIMEOUT must be positive")
	}

	sources := cfg.DJIASources[:0]
	for _, s := range cfg.DJIASources {
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			return nil, fmt.Errorf("DJIA_SOURCES entry %q must be an http(s) base URL", s)
		}
		sources = append(sources, s)
	}
	cfg.DJIASources = sources

	return cfg, nil
}
