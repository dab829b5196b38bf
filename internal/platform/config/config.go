// Copyright (c) 2026 Code Academy. All rights reserved.
// Author: platform@codeacademy.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a
strongly-typed Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, token service) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Gatekeeper API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DataDir is the directory holding the JSON-backed student store.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// TokenSecret signs session tokens. Rotating it invalidates every
	// outstanding token.
	TokenSecret string `env:"TOKEN_SECRET,required"`

	// SeedDemoData controls whether demo student accounts are created when
	// the store starts out empty.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigin reports whether origin may make cross-origin requests.
//
// Development allows every origin. Production allows first-party origins
// plus the comma-separated EXTRA_ORIGINS list.
func (c *Config) AllowedOrigin(origin string) bool {
	if c.IsDevelopment() {
		return true
	}
	if strings.HasSuffix(origin, "codeacademy.app") {
		return true
	}
	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if extra = strings.TrimSpace(extra); extra != "" && strings.EqualFold(extra, origin) {
			return true
		}
	}
	return false
}
