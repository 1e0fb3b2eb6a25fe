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
//  2. file (YAML) if WVW_CONFIG is set
//  3. env (prefix WVW_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("WVW_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: WVW_MAX_EVENTS, WVW_SEARCH_ITERATION_CAP, ...
	// Map env keys like WVW_MAX_EVENTS -> max_events (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("WVW_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "wvw_")
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

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the solver cannot honor.
func validate(cfg *Config) error {
	switch {
	case cfg.MaxEvents <= 0:
		return fmt.Errorf("%w: max_events must be positive", ErrInvalidConfig)
	case cfg.SearchIterationCap <= 0:
		return fmt.Errorf("%w: search_iteration_cap must be positive", ErrInvalidConfig)
	case cfg.RefineSweepCap <= 0:
		return fmt.Errorf("%w: refine_sweep_cap must be positive", ErrInvalidConfig)
	case cfg.RandomTrials <= 0:
		return fmt.Errorf("%w: random_trials must be positive", ErrInvalidConfig)
	case cfg.MinMargin <= 0:
		return fmt.Errorf("%w: min_margin must be positive", ErrInvalidConfig)
	}
	return nil
}
