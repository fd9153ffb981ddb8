package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SNIPEMCP_CONFIG is set
//  3. env (prefix SNIPEMCP_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SNIPEMCP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SNIPEMCP_SNIPEIT_URL, SNIPEMCP_LOG_LEVEL, ...
	// Map env keys like SNIPEMCP_SNIPEIT_URL -> snipeit_url (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SNIPEMCP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "snipemcp_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects values that cannot be repaired at runtime. Missing
// credentials are deliberately allowed: the server starts and tools fail
// with a configuration error until they are set.
func (c *Config) validate() error {
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: http_timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("%w: list_limit must be positive", ErrInvalidConfig)
	}
	if c.SnipeITURL != "" && !strings.HasPrefix(c.SnipeITURL, "http://") && !strings.HasPrefix(c.SnipeITURL, "https://") {
		return fmt.Errorf("%w: snipeit_url must start with http:// or https://", ErrInvalidConfig)
	}
	return nil
}
