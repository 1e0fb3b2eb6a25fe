// Package hybrid implements the fast, non-exhaustive solving strategy:
// random sampling, then a deterministic maximum-catch-up seed, then
// hill-climbing refinement of whichever seed survived.
//
// The hybrid trades completeness for speed. It can report that no
// assignment was found; it never claims infeasibility — only the
// branch-and-bound search carries that authority.
package hybrid

import (
	"context"
	"math/rand"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	"github.com/adekau/wvwgg-solver/internal/solver/refine"
	"github.com/adekau/wvwgg-solver/pkg/logger"
)

// Default hybrid configuration constants.
const (
	defaultTrials    = 2000
	defaultMinMargin = 1
	defaultSeed      = 42 // deterministic for reproducible runs
)

// Phase identifies which strategy phase produced (or last attempted) the
// answer.
type Phase int

const (
	// PhaseRandom means uniform random sampling produced the seed.
	PhaseRandom Phase = iota
	// PhaseSeed means the deterministic maximum-catch-up seed was used.
	// On a failed run it means even that seed could not reach the
	// desired ordering.
	PhaseSeed
)

// String returns the phase label used in logs and results.
func (p Phase) String() string {
	switch p {
	case PhaseRandom:
		return "random"
	case PhaseSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one hybrid run.
type Outcome struct {
	// Found reports whether any feasible assignment was located. A false
	// value is not an infeasibility proof.
	Found      bool
	Phase      Phase
	Assignment []placement.Placement
	Final      [model.TeamCount]int
	Margin     int
	// Trials is the number of random samples drawn.
	Trials int
	// Sweeps is the number of refinement sweeps spent on the seed.
	Sweeps int
}

// Engine runs hybrid solves. Not safe for concurrent use: it owns a
// single rng stream.
type Engine struct {
	trials    int
	minMargin int
	seed      int64
	sweepCap  int
	log       logger.Logger
	rng       *rand.Rand
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTrials sets the number of random samples drawn in phase A.
func WithTrials(trials int) Option {
	return func(e *Engine) {
		if trials > 0 {
			e.trials = trials
		}
	}
}

// WithMinMargin sets the minimum separation required between adjacent
// ranks.
func WithMinMargin(margin int) Option {
	return func(e *Engine) {
		if margin > 0 {
			e.minMargin = margin
		}
	}
}

// WithSeed sets the rng seed for random sampling.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithSweepCap bounds the refinement sweeps applied to the winning seed.
func WithSweepCap(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.sweepCap = limit
		}
	}
}

// WithLogger sets a custom logger for hybrid trace events.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New constructs a hybrid engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		trials:    defaultTrials,
		minMargin: defaultMinMargin,
		seed:      defaultSeed,
		log:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.rng = rand.New(rand.NewSource(e.seed)) //nolint:gosec // deterministic seed for reproducible sampling
	return e
}

// Run draws random assignments, falls back to the deterministic
// maximum-catch-up seed, and refines whichever feasible seed it found.
func (e *Engine) Run(ctx context.Context, scores [model.TeamCount]int, tiers []model.Tier) Outcome {
	out := Outcome{Trials: e.trials}

	// Phase A: uniform random sampling. Placements are drawn as whole
	// permutations, so a sample can never hand two teams the same rank.
	best := make([]placement.Placement, 0, len(tiers))
	bestMargin := 0
	found := false
	sample := make([]placement.Placement, len(tiers))
	for trial := 0; trial < e.trials; trial++ {
		for i := range sample {
			sample[i] = placement.All[e.rng.Intn(placement.Count)]
		}
		final := placement.Simulate(scores, tiers, sample)
		if !placement.Ordered(final, e.minMargin) {
			continue
		}
		if m := placement.Margin(final); !found || m < bestMargin {
			best = append(best[:0], sample...)
			bestMargin = m
			found = true
		}
	}

	if found {
		out.Phase = PhaseRandom
	} else {
		// Phase B: the single most favorable assignment for closing the
		// leader/runner-up gap. If even this fails, nothing cheaper than
		// the exhaustive search can help.
		out.Phase = PhaseSeed
		best = best[:0]
		for range tiers {
			best = append(best, placement.MaxCatchUp)
		}
		final := placement.Simulate(scores, tiers, best)
		if !placement.Ordered(final, e.minMargin) {
			e.log.Debug(ctx, "hybrid found nothing",
				logger.Int("trials", e.trials),
				logger.String("phase", out.Phase.String()),
			)
			return out
		}
	}

	// Phase C: relax the surviving seed toward minimum effort.
	climbOpts := []refine.Option{refine.WithMinMargin(e.minMargin), refine.WithLogger(e.log)}
	if e.sweepCap > 0 {
		climbOpts = append(climbOpts, refine.WithSweepCap(e.sweepCap))
	}
	climbed, err := refine.New(climbOpts...).Climb(ctx, scores, tiers, best)
	if err != nil {
		// Unreachable: the seed was just verified feasible.
		return out
	}

	out.Found = true
	out.Assignment = climbed.Assignment
	out.Final = climbed.Final
	out.Margin = climbed.Margin
	out.Sweeps = climbed.Sweeps
	e.log.Debug(ctx, "hybrid found assignment",
		logger.String("phase", out.Phase.String()),
		logger.Int("margin", out.Margin),
		logger.Int("trials", e.trials),
	)
	return out
}
