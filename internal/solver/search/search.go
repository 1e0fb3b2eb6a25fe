// Package search implements the exhaustive branch-and-bound feasibility
// search over future skirmish placements.
//
// The search answers one question: can some assignment of per-skirmish
// finishing orders make the final scores respect the desired ranking?
// It is a depth-first walk over skirmish indices with a sound pruning
// bound, so a negative answer is a proof, not a guess. A third outcome,
// Exhausted, is reported when the iteration budget runs out before either
// conclusion; it must never be conflated with infeasibility.
package search

import (
	"context"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	"github.com/adekau/wvwgg-solver/pkg/logger"
)

// Default search configuration constants.
const (
	defaultIterationCap = 500_000
	defaultMinMargin    = 1
)

// Status is the conclusion of a search run.
type Status int

const (
	// StatusFound means a feasible assignment was located.
	StatusFound Status = iota
	// StatusInfeasible means the search proved no assignment can reach
	// the desired ordering. This is mathematically certain.
	StatusInfeasible
	// StatusExhausted means the iteration budget ran out before a
	// conclusion. Inconclusive: not a feasibility verdict either way.
	StatusExhausted
)

// String returns the status label used in logs and results.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusInfeasible:
		return "infeasible"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the result of one search run.
type Outcome struct {
	Status Status
	// Assignment holds one placement per skirmish when Status is
	// StatusFound; nil otherwise.
	Assignment []placement.Placement
	// Iterations is the number of search nodes visited.
	Iterations int
}

// Engine runs branch-and-bound searches. An Engine is reusable but not
// safe for concurrent use; each Run owns its own scratch state.
type Engine struct {
	iterationCap int
	minMargin    int
	log          logger.Logger

	// per-run scratch
	tiers      []model.Tier
	spread     []int
	order      [][placement.Count]placement.Placement
	scores     [model.TeamCount]int
	chosen     []placement.Placement
	iterations int
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithIterationCap sets the hard ceiling on visited search nodes.
func WithIterationCap(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.iterationCap = limit
		}
	}
}

// WithMinMargin sets the minimum separation required between adjacent
// ranks in the final standings.
func WithMinMargin(margin int) Option {
	return func(e *Engine) {
		if margin > 0 {
			e.minMargin = margin
		}
	}
}

// WithLogger sets a custom logger for search trace events.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New constructs a search engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		iterationCap: defaultIterationCap,
		minMargin:    defaultMinMargin,
		log:          logger.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run searches for an assignment of the given skirmishes that puts the
// slot scores into strict desired order. Scores are indexed by desired
// rank slot (0 = desired first).
func (e *Engine) Run(ctx context.Context, scores [model.TeamCount]int, tiers []model.Tier) Outcome {
	e.scores = scores
	e.tiers = tiers
	e.chosen = make([]placement.Placement, len(tiers))
	e.iterations = 0
	e.precompute()

	status := e.dfs(0)

	out := Outcome{Status: status, Iterations: e.iterations}
	if status == StatusFound {
		out.Assignment = append([]placement.Placement(nil), e.chosen...)
	}
	e.log.Debug(ctx, "search finished",
		logger.String("status", status.String()),
		logger.Int("events", len(tiers)),
		logger.Int("iterations", e.iterations),
	)
	return out
}

// precompute builds the suffix spread bound and the per-skirmish branch
// order.
//
// spread[i] is the sum of (first - third) over skirmishes i..N-1: the
// largest swing any one team can extract over another across the
// remaining skirmishes. No single skirmish can separate two teams by more
// than its own spread, and spreads add across independent skirmishes, so
// pruning on it is sound.
func (e *Engine) precompute() {
	n := len(e.tiers)
	e.spread = make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		e.spread[i] = e.spread[i+1] + e.tiers[i].Spread()
	}

	// Branch order per skirmish: try the placements that most widen the
	// leader/runner-up gap first. A satisficing heuristic only; the walk
	// still backtracks exhaustively, so correctness is unaffected.
	e.order = make([][placement.Count]placement.Placement, n)
	for i := range e.tiers {
		order := placement.All
		tier := e.tiers[i]
		// Insertion sort by descending gain, placement index tiebreak,
		// keeps the branch order fully deterministic.
		for a := 1; a < len(order); a++ {
			for b := a; b > 0 && better(order[b], order[b-1], tier); b-- {
				order[b], order[b-1] = order[b-1], order[b]
			}
		}
		e.order[i] = order
	}
}

// better reports whether p should be branched before q for the tier.
func better(p, q placement.Placement, tier model.Tier) bool {
	gp, gq := p.Gain(tier), q.Gain(tier)
	if gp != gq {
		return gp > gq
	}
	return p < q
}

// dfs explores skirmish index i with the current cumulative slot scores.
// The returned status means: StatusFound — a feasible leaf was reached
// below this node; StatusInfeasible — this subtree provably contains no
// feasible leaf; StatusExhausted — the iteration cap fired.
func (e *Engine) dfs(i int) Status {
	e.iterations++
	if e.iterations > e.iterationCap {
		return StatusExhausted
	}

	if i == len(e.tiers) {
		if placement.Ordered(e.scores, e.minMargin) {
			return StatusFound
		}
		return StatusInfeasible
	}

	// Pruning bound: if even the maximum remaining swing cannot lift the
	// trailing slot past the one ahead of it, no leaf below here works.
	if e.scores[0]+e.spread[i] < e.scores[1]+e.minMargin ||
		e.scores[1]+e.spread[i] < e.scores[2]+e.minMargin {
		return StatusInfeasible
	}

	for _, p := range e.order[i] {
		pts := p.Points(e.tiers[i])
		for slot := range e.scores {
			e.scores[slot] += pts[slot]
		}
		e.chosen[i] = p

		status := e.dfs(i + 1)

		for slot := range e.scores {
			e.scores[slot] -= pts[slot]
		}

		if status != StatusInfeasible {
			// Found bubbles the feasible leaf up; Exhausted aborts the
			// whole walk so a budget overrun can never masquerade as a
			// proof of infeasibility.
			return status
		}
	}
	return StatusInfeasible
}
