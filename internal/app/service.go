// Package service provides the strategy orchestrator: the single entry
// point that validates a scenario, runs the solving strategies in
// priority order, and shapes the outcome into the caller-facing result.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	"github.com/adekau/wvwgg-solver/internal/domain/tiers"
	"github.com/adekau/wvwgg-solver/internal/solver/hybrid"
	"github.com/adekau/wvwgg-solver/internal/solver/refine"
	"github.com/adekau/wvwgg-solver/internal/solver/search"
	"github.com/adekau/wvwgg-solver/pkg/logger"
	"github.com/adekau/wvwgg-solver/pkg/metrics"
)

// Default orchestrator configuration constants.
const (
	defaultMaxEvents    = 50
	defaultIterationCap = 500_000
	defaultSweepCap     = 32
	defaultTrials       = 2000
	defaultMinMargin    = 1
	defaultSeed         = 42
)

// Rejection reason labels for metrics.
const (
	rejectInvalidOrder = "invalid_desired_order"
	rejectNoEvents     = "no_remaining_events"
	rejectCapacity     = "capacity_exceeded"
	rejectTierData     = "tier_data"
)

// Service orchestrates the solving strategies. Safe for concurrent use:
// each Solve owns its own engines and scratch state.
type Service struct {
	maxEvents    int
	iterationCap int
	sweepCap     int
	trials       int
	minMargin    int
	seed         int64
	source       tiers.Source
	log          logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMaxEvents sets the scenario-size ceiling for exhaustive search.
func WithMaxEvents(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxEvents = limit
		}
	}
}

// WithIterationCap sets the branch-and-bound node budget per solve.
func WithIterationCap(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.iterationCap = limit
		}
	}
}

// WithSweepCap bounds hill-climbing sweeps per refinement.
func WithSweepCap(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.sweepCap = limit
		}
	}
}

// WithTrials sets the hybrid strategy's random sample count.
func WithTrials(trials int) Option {
	return func(s *Service) {
		if trials > 0 {
			s.trials = trials
		}
	}
}

// WithMinMargin sets the default minimum separation between adjacent
// ranks; individual requests may override it upward of zero.
func WithMinMargin(margin int) Option {
	return func(s *Service) {
		if margin > 0 {
			s.minMargin = margin
		}
	}
}

// WithRandomSeed seeds the hybrid strategy's rng.
func WithRandomSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithTierSource injects the skirmish tier lookup.
func WithTierSource(source tiers.Source) Option {
	return func(s *Service) {
		if source != nil {
			s.source = source
		}
	}
}

// WithLogger sets a custom logger for the service and its engines.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxEvents:    defaultMaxEvents,
		iterationCap: defaultIterationCap,
		sweepCap:     defaultSweepCap,
		trials:       defaultTrials,
		minMargin:    defaultMinMargin,
		seed:         defaultSeed,
		source:       tiers.NewTable(),
		log:          logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve validates the request, runs the strategies in priority order, and
// returns the shaped result. Validation failures are returned as errors
// before any search; search outcomes (including proven infeasibility and
// budget exhaustion) are reported in the Result, never as errors.
//
// The call is synchronous, CPU-bound, and blocking: callers embedding it
// in a request-serving runtime should dispatch it to a worker.
func (s *Service) Solve(ctx context.Context, req Request) (res *Result, err error) {
	// This is a request/response computation that must degrade
	// gracefully; a malformed scenario must not take the caller down.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
			s.log.Error(ctx, "solve panicked", logger.Any("panic", r))
		}
	}()

	slots, minMargin, verr := s.validate(req)
	if verr != nil {
		return nil, verr
	}

	eventTiers, terr := s.resolveTiers(ctx, req.Events)
	if terr != nil {
		metrics.RecordReject(rejectTierData)
		return nil, terr
	}

	metrics.RecordScenarioSize(len(req.Events))
	started := time.Now()
	result := s.waterfall(ctx, slots, eventTiers, minMargin, req)
	metrics.RecordSolve(string(result.Method), float64(time.Since(started).Microseconds())/1e3)

	s.log.Info(ctx, "solve finished",
		logger.String("method", string(result.Method)),
		logger.Bool("feasible", result.Feasible),
		logger.Int("events", len(req.Events)),
		logger.Int("iterations", result.Iterations),
	)
	return result, nil
}

// validate enforces the input contract and maps team scores onto desired
// rank slots (slot 0 = desired first).
func (s *Service) validate(req Request) ([model.TeamCount]int, int, error) {
	var slots [model.TeamCount]int

	seen := map[model.TeamID]bool{}
	for i, team := range req.DesiredOrder {
		if team == "" || seen[team] {
			metrics.RecordReject(rejectInvalidOrder)
			return slots, 0, fmt.Errorf("%w: duplicate or empty entry %q at rank %d", ErrInvalidDesiredOrder, team, i+1)
		}
		seen[team] = true
		score, ok := req.Scores[team]
		if !ok {
			metrics.RecordReject(rejectInvalidOrder)
			return slots, 0, fmt.Errorf("%w: no current score for team %q", ErrInvalidDesiredOrder, team)
		}
		slots[i] = score
	}

	if len(req.Events) == 0 {
		metrics.RecordReject(rejectNoEvents)
		return slots, 0, ErrNoRemainingEvents
	}
	if len(req.Events) > s.maxEvents {
		metrics.RecordReject(rejectCapacity)
		return slots, 0, fmt.Errorf("%w: %d events, ceiling is %d", ErrCapacityExceeded, len(req.Events), s.maxEvents)
	}

	minMargin := s.minMargin
	if req.MinMargin > 0 {
		minMargin = req.MinMargin
	}
	return slots, minMargin, nil
}

// resolveTiers looks up and validates the point triple of every event.
func (s *Service) resolveTiers(ctx context.Context, events []model.Event) ([]model.Tier, error) {
	resolved := make([]model.Tier, len(events))
	for i, ev := range events {
		tier, err := s.source.Lookup(ctx, ev.StartTime, ev.Region)
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %w", ErrTierData, ev.ID, err)
		}
		if err := tier.Validate(); err != nil {
			return nil, fmt.Errorf("%w: event %q: %w", ErrTierData, ev.ID, err)
		}
		resolved[i] = tier
	}
	return resolved, nil
}

// waterfall runs the strategies in priority order: the exhaustive search
// is authoritative; the hybrid is strictly a performance fallback that
// can report "not found" but never "impossible".
func (s *Service) waterfall(ctx context.Context, slots [model.TeamCount]int, eventTiers []model.Tier, minMargin int, req Request) *Result {
	eng := search.New(
		search.WithIterationCap(s.iterationCap),
		search.WithMinMargin(minMargin),
		search.WithLogger(s.log),
	)
	out := eng.Run(ctx, slots, eventTiers)
	metrics.RecordSearchIterations(out.Iterations)

	switch out.Status {
	case search.StatusFound:
		climbed, err := refine.New(
			refine.WithSweepCap(s.sweepCap),
			refine.WithMinMargin(minMargin),
			refine.WithLogger(s.log),
		).Climb(ctx, slots, eventTiers, out.Assignment)
		if err != nil {
			// Unreachable: the search just verified the assignment.
			return s.infeasibleResult(MethodTimeout, out.Iterations, "refinement rejected a feasible assignment")
		}
		metrics.RecordRefineSweeps(climbed.Sweeps)
		return s.feasibleResult(MethodExhaustive, climbed.Assignment, climbed.Final, climbed.Margin, out.Iterations, req)

	case search.StatusInfeasible:
		return s.infeasibleResult(MethodProvenInfeasible, out.Iterations,
			"no placement sequence can produce the desired order; the remaining skirmishes cannot close the gap")

	case search.StatusExhausted:
		fallthrough
	default:
		hyb := hybrid.New(
			hybrid.WithTrials(s.trials),
			hybrid.WithSeed(s.seed),
			hybrid.WithMinMargin(minMargin),
			hybrid.WithSweepCap(s.sweepCap),
			hybrid.WithLogger(s.log),
		).Run(ctx, slots, eventTiers)
		metrics.RecordHybridTrials(hyb.Trials)
		iterations := out.Iterations + hyb.Trials

		if !hyb.Found {
			reason := "search budget exhausted before a conclusion; the scenario was not proven infeasible"
			if hyb.Phase == hybrid.PhaseSeed {
				reason += " (even the maximum-catch-up seed fell short)"
			}
			return s.infeasibleResult(MethodTimeout, iterations, reason)
		}

		metrics.RecordRefineSweeps(hyb.Sweeps)
		method := MethodRandomized
		if hyb.Phase == hybrid.PhaseSeed {
			method = MethodDeterministicSeed
		}
		return s.feasibleResult(method, hyb.Assignment, hyb.Final, hyb.Margin, iterations, req)
	}
}

// feasibleResult converts a slot-indexed assignment back into the
// per-team, per-event contract.
func (s *Service) feasibleResult(method Method, asg []placement.Placement, final [model.TeamCount]int, margin int, iterations int, req Request) *Result {
	finalScores := make(map[model.TeamID]int, model.TeamCount)
	for slot, team := range req.DesiredOrder {
		finalScores[team] = final[slot]
	}

	assignment := make([]EventRanks, len(asg))
	leaderFirsts := 0
	for i, p := range asg {
		ranksByTeam := make(map[model.TeamID]int, model.TeamCount)
		for slot, team := range req.DesiredOrder {
			ranksByTeam[team] = p.Rank(slot) + 1
		}
		assignment[i] = EventRanks{EventID: req.Events[i].ID, Ranks: ranksByTeam}
		if p.Rank(0) == 0 {
			leaderFirsts++
		}
	}

	metrics.RecordMargin(margin)
	return &Result{
		Feasible:    true,
		Method:      method,
		FinalScores: finalScores,
		Margin:      margin,
		Assignment:  assignment,
		Iterations:  iterations,
		Difficulty:  difficultyOf(float64(leaderFirsts) / float64(len(asg))),
	}
}

// infeasibleResult shapes a negative or inconclusive outcome.
func (s *Service) infeasibleResult(method Method, iterations int, reason string) *Result {
	return &Result{
		Feasible:   false,
		Method:     method,
		Iterations: iterations,
		Reason:     reason,
	}
}
