package simulation

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/blockflix/blockflix/internal/model"
)

// grower simulates user-base growth and recurring billing one month at
// a time.  userCount is the run-state counter: it is owned here and
// threaded explicitly instead of living in package state.
type grower struct {
	store   Store
	rng     *rand.Rand
	names   *NameGenerator
	pricing PricingPolicy

	userCount int
}

// run seeds the initial cohort at the epoch and then advances the
// cursor month by month until it passes the end date.  Every month:
// draw a growth rate, onboard the new cohort, then bill every user who
// exists as of that month, including the ones onboarded moments earlier
// in the same iteration.
func (g *grower) run(ctx context.Context, epoch, until time.Time, initial int) error {
	log.Printf("seeding initial cohort of %d users at %s", initial, epoch.Format("2006-01-02"))
	if err := g.onboard(ctx, epoch, initial); err != nil {
		return fmt.Errorf("seed cohort: %w", err)
	}
	if err := g.bill(ctx, epoch); err != nil {
		return fmt.Errorf("bill %s: %w", epoch.Format("2006-01-02"), err)
	}

	for cursor := epoch.AddDate(0, 1, 0); !cursor.After(until); cursor = cursor.AddDate(0, 1, 0) {
		terms := g.pricing.TermsFor(cursor)
		rate := uniform(g.rng, terms.MinGrowthPct, terms.MaxGrowthPct) / 100
		newCount := int(math.Round(float64(g.userCount) * rate))
		if err := g.onboard(ctx, cursor, newCount); err != nil {
			return fmt.Errorf("grow %s: %w", cursor.Format("2006-01-02"), err)
		}
		if err := g.bill(ctx, cursor); err != nil {
			return fmt.Errorf("bill %s: %w", cursor.Format("2006-01-02"), err)
		}
		log.Printf("users and payments built for %s (%d users total)", cursor.Format("2006-01-02"), g.userCount)
	}
	return nil
}

// onboard synthesizes n users dated to the given month and stores them
// in one batch.
func (g *grower) onboard(ctx context.Context, month time.Time, n int) error {
	if n <= 0 {
		return nil
	}
	users := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, g.names.NewUser(month))
	}
	if err := g.store.BulkCreateUsers(ctx, users); err != nil {
		return err
	}
	g.userCount += n
	return nil
}

// bill charges the month's fee to every user created on or before the
// month.  The user set is re-read from the store rather than tracked
// locally so that same-month joiners are included.
func (g *grower) bill(ctx context.Context, month time.Time) error {
	ids, err := g.store.UserIDsCreatedBy(ctx, month)
	if err != nil {
		return err
	}
	amount := g.pricing.TermsFor(month).Amount
	payments := make([]model.Payment, 0, len(ids))
	for _, id := range ids {
		payments = append(payments, model.Payment{UserID: id, Amount: amount, PaymentDate: month})
	}
	return g.store.BulkCreatePayments(ctx, payments)
}

// uniform draws from [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
