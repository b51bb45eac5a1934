// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Supported values for FOLIO_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SiteDir     string `env:"FOLIO_SITE_DIR"`                               // Empty means the embedded site
	ContentPath string `env:"FOLIO_CONTENT_PATH" envDefault:"content.json"` // Relative to the site
	ContentURL  string `env:"FOLIO_CONTENT_URL"`                            // Optional remote content document
	OutputDir   string `env:"FOLIO_OUTPUT_DIR" envDefault:"./public"`

	ServerHost string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// Per-client request limit for the server; zero disables it.
	RateLimit float64 `env:"FOLIO_RATE_LIMIT" envDefault:"10"`
	RateBurst int     `env:"FOLIO_RATE_BURST" envDefault:"20"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseEmbeddedSite returns true if no site directory is configured.
func (c Config) UseEmbeddedSite() bool {
	return c.SiteDir == ""
}

// UseRemoteContent returns true if the content document is fetched over HTTP.
func (c Config) UseRemoteContent() bool {
	return c.ContentURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("FOLIO_SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}

	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("FOLIO_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("FOLIO_LOG_LEVEL must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("FOLIO_RATE_LIMIT must not be negative, got %g", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("FOLIO_RATE_BURST must be at least 1, got %d", c.RateBurst)
	}

	if strings.TrimSpace(c.ContentPath) == "" {
		return fmt.Errorf("FOLIO_CONTENT_PATH must not be empty")
	}

	if c.ContentURL != "" {
		u, err := url.Parse(c.ContentURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("FOLIO_CONTENT_URL must be an absolute http(s) URL, got %q", c.ContentURL)
		}
	}

	return nil
}
