package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/blockflix/blockflix/internal/model"
	"github.com/blockflix/blockflix/internal/utils"
)

// UserRepo manages persistence for users.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, first_name, last_name, username, email, password, active, is_admin, created_at`

// Create inserts a registering user with a hashed password and returns
// the new id.  The unique index on username maps to ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (first_name, last_name, username, email, password, active, created_at) VALUES (?,?,?,?,?,?,?)",
		u.FirstName, u.LastName, u.Username, u.Email, hash, true, time.Now().UTC())
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	u.ID = uint64(id)
	return u.ID, nil
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	const q = `SELECT ` + userColumns + ` FROM users WHERE username=? LIMIT 1`
	return r.get(ctx, q, username)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=? LIMIT 1`
	return r.get(ctx, q, id)
}

func (r *UserRepo) get(ctx context.Context, q string, arg any) (*model.User, error) {
	var u model.User
	var hash sql.NullString
	err := r.DB.QueryRowContext(ctx, q, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &hash, &u.Active, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if hash.Valid {
		h := hash.String
		u.PasswordHash = &h
	}
	return &u, nil
}

// BulkCreate inserts seeded users without passwords.  Ids are assigned
// by the database; the simulation queries them back per month rather
// than tracking them here.
func (r *UserRepo) BulkCreate(ctx context.Context, users []model.User) error {
	args := make([]any, 0, len(users)*6)
	for _, u := range users {
		args = append(args, u.FirstName, u.LastName, u.Username, u.Email, u.Active, u.CreatedAt)
	}
	return execBulk(ctx, r.DB, `INSERT INTO users (first_name, last_name, username, email, active, created_at) VALUES`, "(?,?,?,?,?,?)", 6, args)
}

// IDsCreatedBy returns the ids of every user created on or before the
// cutoff, ordered by id.  The billing and rental steps iterate this
// set each simulated month.
func (r *UserRepo) IDsCreatedBy(ctx context.Context, cutoff time.Time) ([]uint64, error) {
	const q = `SELECT id FROM users WHERE created_at <= ? ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the total number of users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
