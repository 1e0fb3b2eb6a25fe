// Package scenarios generates randomized solver scenarios and reads and
// writes scenario files. The generator backs the gen-scenarios tool and
// doubles as a fixture source in tests.
package scenarios

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	service "github.com/adekau/wvwgg-solver/internal/app"
	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/pkg/logger"
)

// Default generation parameters.
const (
	defaultMinEvents = 3
	defaultMaxEvents = 20
	defaultScoreMin  = 500
	defaultScoreMax  = 1500
	defaultSeed      = 42

	skirmishInterval = 2 * time.Hour
)

// defaultTeams are the conventional matchup colors.
var defaultTeams = [model.TeamCount]model.TeamID{"red", "blue", "green"}

// Generator produces random solver requests from a seeded rng, so a
// fixed seed reproduces the same batch. Not safe for concurrent use.
type Generator struct {
	minEvents int
	maxEvents int
	scoreMin  int
	scoreMax  int
	teams     [model.TeamCount]model.TeamID
	start     time.Time
	log       logger.Logger
	rng       *rand.Rand
	seed      int64
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithEventRange bounds how many skirmishes a generated scenario holds.
func WithEventRange(minEvents, maxEvents int) Option {
	return func(g *Generator) {
		if minEvents > 0 && maxEvents >= minEvents {
			g.minEvents = minEvents
			g.maxEvents = maxEvents
		}
	}
}

// WithScoreRange bounds the generated current scores.
func WithScoreRange(scoreMin, scoreMax int) Option {
	return func(g *Generator) {
		if scoreMin >= 0 && scoreMax > scoreMin {
			g.scoreMin = scoreMin
			g.scoreMax = scoreMax
		}
	}
}

// WithTeams replaces the default team ids.
func WithTeams(teams [model.TeamCount]model.TeamID) Option {
	return func(g *Generator) {
		for _, t := range teams {
			if t == "" {
				return
			}
		}
		g.teams = teams
	}
}

// WithStart anchors the first skirmish's start time.
func WithStart(start time.Time) Option {
	return func(g *Generator) {
		if !start.IsZero() {
			g.start = start
		}
	}
}

// WithSeed seeds the rng for reproducible batches.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New constructs a Generator with default configuration.
func New(opts ...Option) *Generator {
	g := &Generator{
		minEvents: defaultMinEvents,
		maxEvents: defaultMaxEvents,
		scoreMin:  defaultScoreMin,
		scoreMax:  defaultScoreMax,
		teams:     defaultTeams,
		start:     time.Now().UTC().Truncate(skirmishInterval),
		log:       logger.Nop(),
		seed:      defaultSeed,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed for reproducible batches
	return g
}

// Generate produces one random scenario: random current scores, a run of
// consecutive skirmishes in one region, and a random desired order.
func (g *Generator) Generate(ctx context.Context) service.Request {
	count := g.minEvents + g.rng.Intn(g.maxEvents-g.minEvents+1)
	region := model.RegionNA
	if g.rng.Intn(2) == 1 {
		region = model.RegionEU
	}

	events := make([]model.Event, count)
	for i := range events {
		events[i] = model.Event{
			ID:        uuid.New().String(),
			StartTime: g.start.Add(time.Duration(i) * skirmishInterval),
			Region:    region,
		}
	}

	scores := make(map[model.TeamID]int, model.TeamCount)
	for _, team := range g.teams {
		scores[team] = g.scoreMin + g.rng.Intn(g.scoreMax-g.scoreMin+1)
	}

	order := g.teams
	g.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	g.log.Debug(ctx, "generated scenario",
		logger.Int("events", count),
		logger.String("region", string(region)),
	)
	return service.Request{
		Scores:       scores,
		Events:       events,
		DesiredOrder: order,
	}
}

// GenerateBatch produces n independent scenarios from the same rng
// stream.
func (g *Generator) GenerateBatch(ctx context.Context, n int) []service.Request {
	batch := make([]service.Request, n)
	for i := range batch {
		batch[i] = g.Generate(ctx)
	}
	return batch
}
