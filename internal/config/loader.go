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
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FAIRDRAW_CONFIG is set
//  3. env (prefix FAIRDRAW_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FAIRDRAW_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FAIRDRAW_ADDR, FAIRDRAW_PROVIDER_BASE_URL, ...
	// Map env keys like FAIRDRAW_PROVIDER_TIMEOUT_MS -> provider_timeout_ms,
	// preserving underscores to match koanf tags on the struct.
	envProvider := env.Provider("FAIRDRAW_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fairdraw_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.ProviderBaseURL == "":
		return nil, fmt.Errorf("%w: provider_base_url must not be empty", ErrInvalidConfig)
	case cfg.ProviderTimeoutMS < 0:
		return nil, fmt.Errorf("%w: provider_timeout_ms must not be negative", ErrInvalidConfig)
	case cfg.MaxParticipants < 0:
		return nil, fmt.Errorf("%w: max_participants must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
