package nexusdb

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-driven client configuration.
type Config struct {
	// APIKey is the credential issued by the service dashboard.
	APIKey string `envconfig:"NEXUSDB_API_KEY"`

	// BaseURL overrides the production query endpoint.
	BaseURL string `envconfig:"NEXUSDB_BASE_URL"`

	// LegacyBaseURL is the unprefixed form older deployments export.
	// NEXUSDB_BASE_URL wins when both are set.
	LegacyBaseURL string `envconfig:"BASE_URL"`
}

// NewFromEnv constructs a Client from NEXUSDB_API_KEY and, when present,
// NEXUSDB_BASE_URL (falling back to BASE_URL). Explicit options are applied
// after the environment and take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	base := cfg.BaseURL
	if base == "" {
		base = cfg.LegacyBaseURL
	}
	if base != "" {
		opts = append([]Option{WithBaseURL(base)}, opts...)
	}
	return New(cfg.APIKey, opts...)
}
