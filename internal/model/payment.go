package model

import "time"

// Payment represents a row in the `payments` table.  The table is an
// append-only ledger: the billing step writes exactly one payment per
// existing user per simulated month and nothing ever updates them.
type Payment struct {
	ID          uint64    // payments.id
	UserID      uint64    // payments.user_id
	Amount      float64   // payments.amount
	PaymentDate time.Time // payments.payment_date
}
