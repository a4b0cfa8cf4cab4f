package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blockflix/blockflix/internal/model"
)

// FilmRepo manages persistence for films and their associations.
type FilmRepo struct {
	db *sql.DB
}

// NewFilmRepo constructs a FilmRepo with the given DB handle.
func NewFilmRepo(db *sql.DB) *FilmRepo { return &FilmRepo{db: db} }

const filmColumns = `id, title, description, poster_url, release_date, popularity, length`

// GetByID retrieves a film by its ID.  It returns ErrFilmNotFound if
// there is no matching row.
func (r *FilmRepo) GetByID(ctx context.Context, id uint64) (*model.Film, error) {
	const q = `SELECT ` + filmColumns + ` FROM films WHERE id = ?`
	f, err := scanFilm(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return f, nil
}

// ListTop returns the most popular films, ordered by popularity
// descending.  It backs the public film listing endpoint.
func (r *FilmRepo) ListTop(ctx context.Context, limit int) ([]model.Film, error) {
	const q = `SELECT ` + filmColumns + ` FROM films ORDER BY popularity DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	return result, rows.Err()
}

// EligibleIDs returns the ids of films available for rental as of the
// given date: released on or before it and with a popularity at or
// above the threshold.  An empty result is not an error; the caller
// skips the rent step.
func (r *FilmRepo) EligibleIDs(ctx context.Context, asOf time.Time, minPopularity float64) ([]uint64, error) {
	const q = `SELECT id FROM films WHERE release_date IS NOT NULL AND release_date <= ? AND popularity >= ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, asOf, minPopularity)
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

// Actors returns the cast of a film in insertion order.
func (r *FilmRepo) Actors(ctx context.Context, filmID uint64) ([]model.Actor, error) {
	const q = `SELECT a.id, a.first_name, a.last_name
               FROM actors a
               JOIN films_actors fa ON fa.actor_id = a.id
               WHERE fa.film_id = ?
               ORDER BY fa.id`
	rows, err := r.db.QueryContext(ctx, q, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Actor
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Categories returns the genres of a film.
func (r *FilmRepo) Categories(ctx context.Context, filmID uint64) ([]model.Category, error) {
	const q = `SELECT c.id, c.name
               FROM categories c
               JOIN films_categories fc ON fc.category_id = c.id
               WHERE fc.film_id = ?
               ORDER BY fc.id`
	rows, err := r.db.QueryContext(ctx, q, filmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// BulkCreateTx inserts films inside the caller's transaction.  Films
// keep the explicit ids assigned by the dataset.
func (r *FilmRepo) BulkCreateTx(ctx context.Context, tx *sql.Tx, films []model.Film) error {
	args := make([]any, 0, len(films)*7)
	for _, f := range films {
		args = append(args, f.ID, f.Title, f.Description, f.PosterURL, f.ReleaseDate, f.Popularity, f.Length)
	}
	return execBulk(ctx, tx, `INSERT INTO films (id, title, description, poster_url, release_date, popularity, length) VALUES`, "(?,?,?,?,?,?,?)", 7, args)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFilm(row rowScanner) (*model.Film, error) {
	var f model.Film
	var poster sql.NullString
	var release sql.NullTime
	var length sql.NullInt64
	err := row.Scan(&f.ID, &f.Title, &f.Description, &poster, &release, &f.Popularity, &length)
	if err != nil {
		return nil, err
	}
	if poster.Valid {
		p := poster.String
		f.PosterURL = &p
	}
	if release.Valid {
		d := release.Time
		f.ReleaseDate = &d
	}
	if length.Valid {
		n := int(length.Int64)
		f.Length = &n
	}
	return &f, nil
}
