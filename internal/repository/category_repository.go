package repository

import (
	"context"
	"database/sql"

	"github.com/blockflix/blockflix/internal/model"
)

// CategoryRepo manages persistence for categories and the
// films_categories association table.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the given DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// BulkCreateTx inserts categories inside the caller's transaction.
func (r *CategoryRepo) BulkCreateTx(ctx context.Context, tx *sql.Tx, categories []model.Category) error {
	args := make([]any, 0, len(categories)*2)
	for _, c := range categories {
		args = append(args, c.ID, c.Name)
	}
	return execBulk(ctx, tx, `INSERT INTO categories (id, name) VALUES`, "(?,?)", 2, args)
}

// BulkCreateFilmCategoriesTx writes the (category, film) association
// pairs after the parent rows are committed.
func (r *CategoryRepo) BulkCreateFilmCategoriesTx(ctx context.Context, tx *sql.Tx, pairs []model.FilmCategory) error {
	args := make([]any, 0, len(pairs)*2)
	for _, p := range pairs {
		args = append(args, p.CategoryID, p.FilmID)
	}
	return execBulk(ctx, tx, `INSERT INTO films_categories (category_id, film_id) VALUES`, "(?,?)", 2, args)
}
