// Package config defines solver configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Default solver limits.
const (
	defaultMaxEvents    = 50
	defaultIterationCap = 500_000
	defaultSweepCap     = 32
	defaultTrials       = 2000
	defaultMinMargin    = 1
	defaultSeed         = 42
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxEvents caps the number of remaining skirmishes a scenario may
	// carry; larger requests are rejected before any search.
	MaxEvents int `koanf:"max_events"`

	// SearchIterationCap bounds branch-and-bound nodes per solve.
	SearchIterationCap int `koanf:"search_iteration_cap"`

	// RefineSweepCap bounds hill-climbing sweeps per refinement.
	RefineSweepCap int `koanf:"refine_sweep_cap"`

	// RandomTrials sets the hybrid strategy's sample count.
	RandomTrials int `koanf:"random_trials"`

	// RandomSeed seeds the hybrid strategy's rng. Fixed by default so
	// repeated runs are reproducible.
	RandomSeed int64 `koanf:"random_seed"`

	// MinMargin is the minimum separation required between adjacent
	// ranks in the final standings.
	MinMargin int `koanf:"min_margin"`

	// MetricsDump makes the CLI print gathered metrics after a solve.
	MetricsDump bool `koanf:"metrics_dump"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		MaxEvents:          defaultMaxEvents,
		SearchIterationCap: defaultIterationCap,
		RefineSweepCap:     defaultSweepCap,
		RandomTrials:       defaultTrials,
		RandomSeed:         defaultSeed,
		MinMargin:          defaultMinMargin,
		MetricsDump:        false,
	}
}
