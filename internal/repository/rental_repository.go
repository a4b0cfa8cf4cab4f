package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blockflix/blockflix/internal/model"
)

// RentalRepo manages persistence for rentals.
type RentalRepo struct{ DB *sql.DB }

// NewRentalRepo constructs a RentalRepo with the given DB handle.
func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{DB: db} }

// OpenByUser finds the single open rental (NULL return date) for a
// user.  No row maps to ErrNoOpenRental, which callers treat as the
// expected "rent" branch.  More than one row maps to
// ErrMultipleOpenRentals: the invariant is broken and the caller must
// abort rather than pick one.
func (r *RentalRepo) OpenByUser(ctx context.Context, userID uint64) (*model.Rental, error) {
	const q = `SELECT id, film_id, user_id, rental_date, return_date FROM rentals WHERE user_id = ? AND return_date IS NULL LIMIT 2`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var found []model.Rental
	for rows.Next() {
		var rental model.Rental
		var returned sql.NullTime
		if err := rows.Scan(&rental.ID, &rental.FilmID, &rental.UserID, &rental.RentalDate, &returned); err != nil {
			return nil, err
		}
		if returned.Valid {
			t := returned.Time
			rental.ReturnDate = &t
		}
		found = append(found, rental)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, ErrNoOpenRental
	case 1:
		return &found[0], nil
	default:
		return nil, ErrMultipleOpenRentals
	}
}

// Create inserts a new open rental and assigns the generated id.
func (r *RentalRepo) Create(ctx context.Context, rental *model.Rental) error {
	const q = `INSERT INTO rentals (film_id, user_id, rental_date) VALUES (?,?,?)`
	res, err := r.DB.ExecContext(ctx, q, rental.FilmID, rental.UserID, rental.RentalDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rental.ID = uint64(id)
	return nil
}

// Close sets the return date on an open rental.  The WHERE clause
// guards against double closing: a rental already returned is treated
// as not found.
func (r *RentalRepo) Close(ctx context.Context, rentalID uint64, returnedAt time.Time) error {
	const q = `UPDATE rentals SET return_date = ? WHERE id = ? AND return_date IS NULL`
	res, err := r.DB.ExecContext(ctx, q, returnedAt, rentalID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRentalNotFound
	}
	return nil
}

// ListByUser returns a user's rental history, newest first.
func (r *RentalRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Rental, error) {
	const q = `SELECT id, film_id, user_id, rental_date, return_date FROM rentals WHERE user_id = ? ORDER BY rental_date DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Rental
	for rows.Next() {
		var rental model.Rental
		var returned sql.NullTime
		if err := rows.Scan(&rental.ID, &rental.FilmID, &rental.UserID, &rental.RentalDate, &returned); err != nil {
			return nil, err
		}
		if returned.Valid {
			t := returned.Time
			rental.ReturnDate = &t
		}
		result = append(result, rental)
	}
	return result, rows.Err()
}
