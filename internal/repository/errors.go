// Package repository contains the data access layer: one repository
// per table plus a Store aggregate that the seeding simulation drives.
// This file defines sentinel errors shared across repositories so that
// callers can distinguish expected not-found cases from real failures
// with errors.Is.
package repository

import "errors"

// ErrNoOpenRental is returned when a user has no rental with a NULL
// return date.  It is the expected branch signal for the rental
// simulator ("rent" instead of "return") and for the return endpoint.
var ErrNoOpenRental = errors.New("no open rental")

// ErrMultipleOpenRentals indicates more than one open rental exists
// for a single user.  That state violates the core invariant of the
// rentals table and must be surfaced, never silently resolved.
var ErrMultipleOpenRentals = errors.New("multiple open rentals for user")

// ErrUsernameExists is returned when an insert hits the unique index
// on users.username.
var ErrUsernameExists = errors.New("username already exists")

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrFilmNotFound is returned when a film lookup matches no row.
var ErrFilmNotFound = errors.New("film not found")

// ErrRentalNotFound is returned when a rental update matches no row.
var ErrRentalNotFound = errors.New("rental not found")
