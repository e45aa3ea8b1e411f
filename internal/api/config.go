package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the orientation backend connection settings.
type Config struct {
	// BaseURL is the root of the backend API, e.g.
	// https://boussole.example.com/api.
	BaseURL string `env:"BOUSSOLE_API_URL" envDefault:"http://localhost:8000/api"`

	// Token is the bearer token attached to every request. Acquisition is
	// handled elsewhere; an empty token sends unauthenticated requests.
	Token string `env:"BOUSSOLE_API_TOKEN"`

	// Timeout bounds each individual remote call. A timeout is handled the
	// same way as any transient network failure.
	Timeout time.Duration `env:"BOUSSOLE_API_TIMEOUT" envDefault:"15s"`
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse API config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the base URL is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid BOUSSOLE_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid BOUSSOLE_API_URL: scheme must be http or https, got %q", u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("BOUSSOLE_API_TIMEOUT must be positive")
	}
	return nil
}
