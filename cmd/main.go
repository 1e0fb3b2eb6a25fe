// Command wvw-solver loads one scenario file, solves it, and prints the
// result as JSON. Exit status is non-zero only for operational failures
// (bad input file, invalid configuration); an infeasible or inconclusive
// scenario is still a successful solve.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"

	service "github.com/adekau/wvwgg-solver/internal/app"
	"github.com/adekau/wvwgg-solver/internal/config"
	"github.com/adekau/wvwgg-solver/internal/scenarios"
	"github.com/adekau/wvwgg-solver/pkg/logger"
	"github.com/adekau/wvwgg-solver/pkg/metrics"

	"github.com/prometheus/common/expfmt"
)

func main() {
	os.Exit(run())
}

func run() int {
	scenarioPath := flag.String("scenario", "scenario.json", "Path to the scenario JSON file")
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx := context.Background()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	req, err := scenarios.Load(*scenarioPath)
	if err != nil {
		log.Error(ctx, "failed to load scenario", logger.String("path", *scenarioPath), logger.Error(err))
		return 1
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithMaxEvents(cfg.MaxEvents),
		service.WithIterationCap(cfg.SearchIterationCap),
		service.WithSweepCap(cfg.RefineSweepCap),
		service.WithTrials(cfg.RandomTrials),
		service.WithRandomSeed(cfg.RandomSeed),
		service.WithMinMargin(cfg.MinMargin),
	)

	result, err := svc.Solve(ctx, req)
	if err != nil {
		// Validation rejections are part of the output contract: report
		// them on stdout like any other outcome, but fail the exit code.
		switch {
		case errors.Is(err, service.ErrInvalidDesiredOrder),
			errors.Is(err, service.ErrNoRemainingEvents),
			errors.Is(err, service.ErrCapacityExceeded):
			log.Warn(ctx, "scenario rejected", logger.Error(err))
		default:
			log.Error(ctx, "solve failed", logger.Error(err))
		}
		return 1
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error(ctx, "failed to encode result", logger.Error(err))
		return 1
	}
	os.Stdout.Write(append(out, '\n'))

	if cfg.MetricsDump {
		if err := dumpMetrics(); err != nil {
			log.Warn(ctx, "failed to dump metrics", logger.Error(err))
		}
	}
	return 0
}

// dumpMetrics writes the gathered solver metrics to stderr in the
// Prometheus text exposition format.
func dumpMetrics() error {
	families, err := metrics.Default().Registry().Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(os.Stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
