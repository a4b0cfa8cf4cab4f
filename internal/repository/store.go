package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blockflix/blockflix/internal/catalog"
	"github.com/blockflix/blockflix/internal/model"
)

// Store aggregates the per-table repositories into the persistence
// boundary the seeding simulation drives.  It satisfies
// simulation.Store.
type Store struct {
	db         *sql.DB
	Films      *FilmRepo
	Actors     *ActorRepo
	Categories *CategoryRepo
	Users      *UserRepo
	Payments   *PaymentRepo
	Rentals    *RentalRepo
}

// NewStore constructs a Store and its repositories on one DB handle.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		Films:      NewFilmRepo(db),
		Actors:     NewActorRepo(db),
		Categories: NewCategoryRepo(db),
		Users:      NewUserRepo(db),
		Payments:   NewPaymentRepo(db),
		Rentals:    NewRentalRepo(db),
	}
}

// Reset wipes every table, association tables first so foreign keys
// never dangle mid-way.  Running it twice in a row is a no-op the
// second time.
func (s *Store) Reset(ctx context.Context) error {
	tables := []string{
		"films_actors", "films_categories",
		"rentals", "payments",
		"categories", "actors", "films", "users",
	}
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+t); err != nil {
			return fmt.Errorf("reset %s: %w", t, err)
		}
	}
	return nil
}

// SaveCatalog persists an imported catalog in two committed phases:
// first the entity rows (films, actors, categories), then the
// association pairs.  Associations must only be written once their
// parents are durably stored, so the phases are separate transactions.
func (s *Store) SaveCatalog(ctx context.Context, cat *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.Categories.BulkCreateTx(ctx, tx, cat.Categories); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save categories: %w", err)
	}
	if err := s.Actors.BulkCreateTx(ctx, tx, cat.Actors); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save actors: %w", err)
	}
	if err := s.Films.BulkCreateTx(ctx, tx, cat.Films); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save films: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit entities: %w", err)
	}

	tx, err = s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.Actors.BulkCreateFilmActorsTx(ctx, tx, cat.FilmActors); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save film actors: %w", err)
	}
	if err := s.Categories.BulkCreateFilmCategoriesTx(ctx, tx, cat.FilmCategories); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save film categories: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit associations: %w", err)
	}
	return nil
}

// BulkCreateUsers inserts one cohort of seeded users.
func (s *Store) BulkCreateUsers(ctx context.Context, users []model.User) error {
	return s.Users.BulkCreate(ctx, users)
}

// UserIDsCreatedBy lists users onboarded on or before the cutoff.
func (s *Store) UserIDsCreatedBy(ctx context.Context, cutoff time.Time) ([]uint64, error) {
	return s.Users.IDsCreatedBy(ctx, cutoff)
}

// BulkCreatePayments appends one month's payments.
func (s *Store) BulkCreatePayments(ctx context.Context, payments []model.Payment) error {
	return s.Payments.BulkCreate(ctx, payments)
}

// EligibleFilmIDs lists films rentable as of the given date.
func (s *Store) EligibleFilmIDs(ctx context.Context, asOf time.Time, minPopularity float64) ([]uint64, error) {
	return s.Films.EligibleIDs(ctx, asOf, minPopularity)
}

// OpenRentalForUser finds the user's single open rental.
func (s *Store) OpenRentalForUser(ctx context.Context, userID uint64) (*model.Rental, error) {
	return s.Rentals.OpenByUser(ctx, userID)
}

// CreateRental opens a new rental.
func (s *Store) CreateRental(ctx context.Context, rental *model.Rental) error {
	return s.Rentals.Create(ctx, rental)
}

// CloseRental sets the return date on an open rental.
func (s *Store) CloseRental(ctx context.Context, rentalID uint64, returnedAt time.Time) error {
	return s.Rentals.Close(ctx, rentalID, returnedAt)
}
