package repository

import (
	"context"
	"database/sql"

	"github.com/blockflix/blockflix/internal/model"
)

// PaymentRepo manages the append-only payments ledger.
type PaymentRepo struct{ DB *sql.DB }

// NewPaymentRepo constructs a PaymentRepo with the given DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// BulkCreate appends one batch of payments, typically a whole
// simulated month at once.
func (r *PaymentRepo) BulkCreate(ctx context.Context, payments []model.Payment) error {
	args := make([]any, 0, len(payments)*3)
	for _, p := range payments {
		args = append(args, p.UserID, p.Amount, p.PaymentDate)
	}
	return execBulk(ctx, r.DB, `INSERT INTO payments (user_id, amount, payment_date) VALUES`, "(?,?,?)", 3, args)
}

// ListByUser returns a user's payment history, newest first.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Payment, error) {
	const q = `SELECT id, user_id, amount, payment_date FROM payments WHERE user_id = ? ORDER BY payment_date DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.Amount, &p.PaymentDate); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
