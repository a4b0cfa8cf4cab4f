package model

import "time"

// Rental represents a row in the `rentals` table.  A rental with a
// NULL return date is "open"; the core invariant of the whole system
// is that a user has at most one open rental at any time.  ReturnDate
// is set exactly once, when the rental closes, and nothing else on the
// row is ever mutated.
type Rental struct {
	ID         uint64     // rentals.id
	FilmID     uint64     // rentals.film_id
	UserID     uint64     // rentals.user_id
	RentalDate time.Time  // rentals.rental_date
	ReturnDate *time.Time // rentals.return_date (NULL while open)
}

// Open reports whether the rental has not been returned yet.
func (r Rental) Open() bool { return r.ReturnDate == nil }
