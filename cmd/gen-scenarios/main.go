// Command gen-scenarios writes a batch of randomized scenario files for
// exercising the solver CLI and benchmarks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adekau/wvwgg-solver/internal/scenarios"
	"github.com/adekau/wvwgg-solver/pkg/logger"
)

// Default generation parameters.
const (
	defaultCount     = 10
	defaultMinEvents = 3
	defaultMaxEvents = 20
)

func main() {
	var (
		count     = flag.Int("count", defaultCount, "Number of scenario files to generate")
		minEvents = flag.Int("min-events", defaultMinEvents, "Minimum remaining skirmishes per scenario")
		maxEvents = flag.Int("max-events", defaultMaxEvents, "Maximum remaining skirmishes per scenario")
		seed      = flag.Int64("seed", 42, "Random seed for reproducible batches")
		outDir    = flag.String("out", ".", "Output directory for scenario files")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()
	ctx := context.Background()

	gen := scenarios.New(
		scenarios.WithSeed(*seed),
		scenarios.WithEventRange(*minEvents, *maxEvents),
		scenarios.WithStart(time.Now().UTC().Truncate(2*time.Hour)),
		scenarios.WithLogger(log),
	)

	for i, req := range gen.GenerateBatch(ctx, *count) {
		path := filepath.Join(*outDir, fmt.Sprintf("scenario_%03d.json", i+1))
		if err := scenarios.Save(path, req); err != nil {
			log.Error(ctx, "failed to write scenario", logger.String("path", path), logger.Error(err))
			os.Exit(1)
		}
		log.Info(ctx, "wrote scenario",
			logger.String("path", path),
			logger.Int("events", len(req.Events)),
		)
	}
}
