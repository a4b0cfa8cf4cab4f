// Package queue defines message payloads exchanged over the message broker.
package queue

// RentalActivityEvent is published whenever a rental is opened or
// returned through the API.  It carries enough information for
// downstream consumers to log or trigger analytics without querying
// the primary database.
type RentalActivityEvent struct {
	Action     string `json:"action"` // "RENTED" or "RETURNED"
	RentalID   uint64 `json:"rental_id"`
	UserID     uint64 `json:"user_id"`
	FilmID     uint64 `json:"film_id"`
	FilmTitle  string `json:"film_title"`
	OccurredAt string `json:"occurred_at"`
}

// Actions for RentalActivityEvent.
const (
	ActionRented   = "RENTED"
	ActionReturned = "RETURNED"
)
