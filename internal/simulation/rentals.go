package simulation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/blockflix/blockflix/internal/model"
	"github.com/blockflix/blockflix/internal/repository"
)

// rentalSimulator walks the same month-stepped timeline as the grower
// and applies one state-machine transition per user per month: a user
// with no open rental rents a random eligible film; a user with an
// open rental returns it with a probability that grows with how long
// the rental has been out.
type rentalSimulator struct {
	store         Store
	rng           *rand.Rand
	minPopularity float64
}

func (s *rentalSimulator) run(ctx context.Context, epoch, until time.Time) error {
	for cursor := epoch; !cursor.After(until); cursor = cursor.AddDate(0, 1, 0) {
		log.Printf("building rentals for %s", cursor.Format("2006-01-02"))

		users, err := s.store.UserIDsCreatedBy(ctx, cursor)
		if err != nil {
			return err
		}
		// Eligibility depends only on the cursor, so the candidate set
		// is fetched once per month and shared by every renting user.
		eligible, err := s.store.EligibleFilmIDs(ctx, cursor, s.minPopularity)
		if err != nil {
			return err
		}

		for _, userID := range users {
			if err := s.step(ctx, userID, eligible, cursor); err != nil {
				return fmt.Errorf("rental step for user %d at %s: %w", userID, cursor.Format("2006-01-02"), err)
			}
		}
	}
	return nil
}

// step fires at most one transition for one user.
func (s *rentalSimulator) step(ctx context.Context, userID uint64, eligible []uint64, cursor time.Time) error {
	rental, err := s.store.OpenRentalForUser(ctx, userID)
	switch {
	case err == nil:
		// Open rental: decide whether it comes back this month.
		if s.rng.Float64() < returnProbability(rental.RentalDate, cursor) {
			return s.store.CloseRental(ctx, rental.ID, cursor)
		}
		return nil
	case errors.Is(err, repository.ErrNoOpenRental):
		// No open rental: rent a random eligible film, or skip the
		// month entirely when nothing qualifies yet.
		if len(eligible) == 0 {
			return nil
		}
		filmID := eligible[s.rng.IntN(len(eligible))]
		return s.store.CreateRental(ctx, &model.Rental{
			FilmID:     filmID,
			UserID:     userID,
			RentalDate: cursor,
		})
	default:
		// Includes ErrMultipleOpenRentals: a broken invariant aborts
		// the run instead of being silently resolved.
		return err
	}
}

// returnProbability computes 1 - 1/weeks for a rental open the given
// number of whole weeks, clamped to [0, 1].  The raw formula is
// negative for anything under a week out and exactly 0 at one week, so
// a rental never comes back in its first weeks and becomes ever more
// likely to as time passes.
func returnProbability(rentedAt, now time.Time) float64 {
	days := int(now.Sub(rentedAt).Hours() / 24)
	weeks := float64(days) / 7
	if weeks <= 0 {
		return 0
	}
	p := 1 - 1/weeks
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
