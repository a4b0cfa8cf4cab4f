package simulation

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/blockflix/blockflix/internal/catalog"
)

// Default knobs matching the historical flat-fee seeding run.
const (
	DefaultInitialUsers  = 100
	DefaultMinPopularity = 5
)

// DefaultEpoch is the first simulated month of the default run.
var DefaultEpoch = time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

// Options configures a seeding run.  The zero value is usable: every
// field falls back to the historical defaults in withDefaults.
type Options struct {
	// Epoch is the first simulated month.
	Epoch time.Time
	// Until is the last month the cursor may reach, inclusive.
	// Defaults to today.
	Until time.Time
	// InitialUsers is the size of the cohort seeded at the epoch.
	InitialUsers int
	// Pricing selects the growth/fee policy.  Defaults to the flat
	// 3–5% growth, 9.99/month preset.
	Pricing PricingPolicy
	// MinPopularity is the rental eligibility threshold for films.
	MinPopularity float64
	// Rand is the randomness source for the whole run.  Supplying a
	// seeded generator makes the run reproducible; when nil a
	// time-seeded one is used.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Epoch.IsZero() {
		o.Epoch = DefaultEpoch
	}
	if o.Until.IsZero() {
		now := time.Now().UTC()
		o.Until = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if o.InitialUsers == 0 {
		o.InitialUsers = DefaultInitialUsers
	}
	if o.Pricing == nil {
		o.Pricing = FlatPricing{MinGrowthPct: 3, MaxGrowthPct: 5, Amount: 9.99}
	}
	if o.MinPopularity == 0 {
		o.MinPopularity = DefaultMinPopularity
	}
	if o.Rand == nil {
		now := time.Now()
		o.Rand = rand.New(rand.NewPCG(uint64(now.Unix()), uint64(now.Nanosecond())))
	}
	return o
}

// Run executes one full seeding run against the store: reset, catalog
// import, user growth with billing, then rental simulation.  Each
// phase replays the same simulated timeline from the epoch to the end
// date.  Any failure aborts the run; partial state is fine to leave
// behind because the next run starts with a reset.
func Run(ctx context.Context, store Store, cat *catalog.Catalog, opts Options) error {
	opts = opts.withDefaults()

	log.Printf("resetting database")
	if err := store.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	log.Printf("saving %d categories, %d actors, %d films",
		len(cat.Categories), len(cat.Actors), len(cat.Films))
	if err := store.SaveCatalog(ctx, cat); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	g := &grower{
		store:   store,
		rng:     opts.Rand,
		names:   NewNameGenerator(opts.Rand),
		pricing: opts.Pricing,
	}
	if err := g.run(ctx, opts.Epoch, opts.Until, opts.InitialUsers); err != nil {
		return fmt.Errorf("grow users: %w", err)
	}

	r := &rentalSimulator{store: store, rng: opts.Rand, minPopularity: opts.MinPopularity}
	if err := r.run(ctx, opts.Epoch, opts.Until); err != nil {
		return fmt.Errorf("simulate rentals: %w", err)
	}
	return nil
}
