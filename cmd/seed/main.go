package main // Entry point for the Blockflix seeder

import (
	"context"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/blockflix/blockflix/internal/catalog"
	"github.com/blockflix/blockflix/internal/config"
	"github.com/blockflix/blockflix/internal/database"
	"github.com/blockflix/blockflix/internal/repository"
	"github.com/blockflix/blockflix/internal/simulation"
)

// The seeder resets the database, imports the movie dataset, and
// simulates a multi-year history of users, payments and rentals.  It
// takes no flags: everything is driven by the SEED_* environment
// variables.  Any failure is fatal; partial state is fine to leave
// behind because the next run starts with a reset.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	log.Printf("loading dataset from %s", cfg.SeedDataDir)
	records, err := catalog.LoadDataset(
		filepath.Join(cfg.SeedDataDir, "movies_metadata.csv"),
		filepath.Join(cfg.SeedDataDir, "credits.csv"),
	)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	imp := catalog.Importer{}
	cat, err := imp.Parse(records)
	if err != nil {
		log.Fatalf("parse dataset: %v", err)
	}

	if err := simulation.Run(context.Background(), repository.NewStore(db), cat, seedOptions(cfg)); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeding complete")
}

// seedOptions maps the SEED_* configuration onto simulation options.
func seedOptions(cfg config.Config) simulation.Options {
	opts := simulation.Options{
		Epoch:        cfg.SeedEpoch,
		InitialUsers: cfg.SeedInitialUsers,
	}
	switch cfg.SeedPricing {
	case "tiered":
		opts.Pricing = simulation.TieredPricing{}
	default:
		opts.Pricing = simulation.FlatPricing{
			MinGrowthPct: cfg.SeedMinGrowthPct,
			MaxGrowthPct: cfg.SeedMaxGrowthPct,
			Amount:       cfg.SeedFee,
		}
	}
	if cfg.SeedRandSeed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.SeedRandSeed, cfg.SeedRandSeed))
	}
	return opts
}
