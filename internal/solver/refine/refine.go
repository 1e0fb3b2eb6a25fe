// Package refine relaxes a feasible assignment toward the minimum-effort
// solution: the lowest margin that still holds the desired strict order.
//
// The relaxation is steepest-improvement hill climbing. It finds a local
// optimum; global optimality is neither guaranteed nor required.
package refine

import (
	"context"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	"github.com/adekau/wvwgg-solver/pkg/logger"
)

// Default refinement configuration constants.
const (
	defaultSweepCap  = 32
	defaultMinMargin = 1
)

// Outcome is the result of one climb.
type Outcome struct {
	Assignment []placement.Placement
	Final      [model.TeamCount]int
	Margin     int
	// Sweeps is the number of full passes over the assignment performed,
	// including the final pass that found no improvement.
	Sweeps int
}

// Engine runs hill-climbing refinements. Not safe for concurrent use.
type Engine struct {
	sweepCap  int
	minMargin int
	log       logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithSweepCap bounds the number of full improvement sweeps. Guards
// against pathological cycling; in practice climbs settle in a handful
// of sweeps.
func WithSweepCap(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.sweepCap = limit
		}
	}
}

// WithMinMargin sets the minimum separation the climb must preserve
// between adjacent ranks.
func WithMinMargin(margin int) Option {
	return func(e *Engine) {
		if margin > 0 {
			e.minMargin = margin
		}
	}
}

// WithLogger sets a custom logger for climb trace events.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New constructs a refinement engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		sweepCap:  defaultSweepCap,
		minMargin: defaultMinMargin,
		log:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Climb lowers the margin of a feasible seed assignment without ever
// breaking the ordering constraint. The seed is not mutated. Returns
// ErrInfeasibleSeed when the seed does not satisfy the ordering to begin
// with.
func (e *Engine) Climb(ctx context.Context, scores [model.TeamCount]int, tiers []model.Tier, seed []placement.Placement) (Outcome, error) {
	final := placement.Simulate(scores, tiers, seed)
	if !placement.Ordered(final, e.minMargin) {
		return Outcome{}, ErrInfeasibleSeed
	}

	asg := append([]placement.Placement(nil), seed...)
	margin := placement.Margin(final)
	sweeps := 0

	for sweeps < e.sweepCap {
		sweeps++
		improved := false

		for i := range asg {
			cur := asg[i]
			curPts := cur.Points(tiers[i])

			// Steepest improvement at this position: evaluate the five
			// alternative placements, keep the best feasible one that
			// strictly lowers the margin.
			best := cur
			bestMargin := margin
			var bestFinal [model.TeamCount]int
			for _, alt := range placement.All {
				if alt == cur {
					continue
				}
				altPts := alt.Points(tiers[i])
				candidate := final
				for slot := range candidate {
					candidate[slot] += altPts[slot] - curPts[slot]
				}
				if !placement.Ordered(candidate, e.minMargin) {
					continue
				}
				if m := placement.Margin(candidate); m < bestMargin {
					best, bestMargin, bestFinal = alt, m, candidate
				}
			}

			if best != cur {
				asg[i] = best
				final = bestFinal
				margin = bestMargin
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	e.log.Debug(ctx, "climb finished",
		logger.Int("margin", margin),
		logger.Int("sweeps", sweeps),
	)
	return Outcome{Assignment: asg, Final: final, Margin: margin, Sweeps: sweeps}, nil
}
