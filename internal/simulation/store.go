// Package simulation synthesizes a multi-year history of users,
// payments and rentals on top of an imported film catalog.  It is a
// sequential batch process: a month-stepped simulated time cursor
// drives user-base growth, recurring billing, and a per-user rental
// state machine.  All randomness flows through one injected generator
// so a seeded run is fully reproducible.
package simulation

import (
	"context"
	"time"

	"github.com/blockflix/blockflix/internal/catalog"
	"github.com/blockflix/blockflix/internal/model"
)

// Store is the persistence boundary of the simulation.  The MySQL
// implementation lives in internal/repository; tests use an in-memory
// one.  OpenRentalForUser must return repository.ErrNoOpenRental when
// the user has no open rental and repository.ErrMultipleOpenRentals
// when more than one exists; the former selects the "rent" branch,
// the latter aborts the run.
type Store interface {
	// Reset deletes all rows from every table.  It runs before each
	// seeding run and must be idempotent.
	Reset(ctx context.Context) error

	// SaveCatalog persists the imported catalog, committing entity
	// rows before association rows.
	SaveCatalog(ctx context.Context, cat *catalog.Catalog) error

	BulkCreateUsers(ctx context.Context, users []model.User) error
	UserIDsCreatedBy(ctx context.Context, cutoff time.Time) ([]uint64, error)
	BulkCreatePayments(ctx context.Context, payments []model.Payment) error

	// EligibleFilmIDs returns the films rentable as of a date:
	// released on or before it with popularity at or above the
	// threshold.  An empty result means the rent step is skipped.
	EligibleFilmIDs(ctx context.Context, asOf time.Time, minPopularity float64) ([]uint64, error)

	OpenRentalForUser(ctx context.Context, userID uint64) (*model.Rental, error)
	CreateRental(ctx context.Context, rental *model.Rental) error
	CloseRental(ctx context.Context, rentalID uint64, returnedAt time.Time) error
}
