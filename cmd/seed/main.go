// Command seed writes a deterministic sample data set (relational CSV
// tables plus a driver knowledge file) for local development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/paddock/internal/seed"
	"github.com/okian/paddock/pkg/logger"
)

func main() {
	dataDir := flag.String("data", "data", "directory to write the CSV tables into")
	knowledgeFile := flag.String("knowledge", "driver_knowledge.json", "path for the driver statistics JSON")
	seasons := flag.Int("seasons", 2, "number of seasons to generate")
	rounds := flag.Int("rounds", 5, "races per season")
	rngSeed := flag.Int64("seed", 42, "RNG seed; equal seeds produce equal data")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx := context.Background()
	gen := seed.New(
		seed.WithSeasons(*seasons),
		seed.WithRounds(*rounds),
		seed.WithSeed(*rngSeed),
	)

	if err := gen.WriteData(ctx, *dataDir); err != nil {
		log.Error(ctx, "failed to write data tables", logger.Error(err))
		os.Exit(1)
	}
	if err := gen.WriteKnowledge(ctx, *knowledgeFile); err != nil {
		log.Error(ctx, "failed to write knowledge file", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "sample data written",
		logger.String("data", *dataDir),
		logger.String("knowledge", *knowledgeFile),
		logger.Int("seasons", *seasons),
		logger.Int("rounds", *rounds),
	)
}
