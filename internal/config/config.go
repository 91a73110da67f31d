// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// DestinationEnv names the variable holding the contact forwarding URL. It is
// read on every submission rather than at startup, so operators can rotate
// the webhook without restarting the server.
const DestinationEnv = "GOOGLE_APPS_SCRIPT_URL"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string        `env:"SOCIALROUTE_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath         string        `env:"SOCIALROUTE_DB_PATH" envDefault:"socialroute.db"`
	ForwardTimeout time.Duration `env:"SOCIALROUTE_FORWARD_TIMEOUT" envDefault:"0s"`
	OTelEndpoint   string        `env:"SOCIALROUTE_OTEL_ENDPOINT"`
	SiteURL        string        `env:"SOCIALROUTE_SITE_URL" envDefault:"https://socialroute.in"`
}

// HasTracing reports whether an OTLP endpoint was configured.
func (c *Config) HasTracing() bool {
	return c.OTelEndpoint != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: SOCIALROUTE_LISTEN_ADDR (127.0.0.1:8080),
// SOCIALROUTE_DB_PATH (socialroute.db), SOCIALROUTE_FORWARD_TIMEOUT (0, no
// limit), SOCIALROUTE_OTEL_ENDPOINT (empty, tracing off) and
// SOCIALROUTE_SITE_URL (https://socialroute.in).
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ForwardTimeout < 0 {
		return nil, fmt.Errorf("SOCIALROUTE_FORWARD_TIMEOUT must not be negative, got %s", cfg.ForwardTimeout)
	}

	u, err := url.Parse(cfg.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("SOCIALROUTE_SITE_URL must be an absolute URL, got %q", cfg.SiteURL)
	}

	return &cfg, nil
}

// Destination returns the current forwarding URL, or "" when unset.
func Destination() string {
	return os.Getenv(DestinationEnv)
}
