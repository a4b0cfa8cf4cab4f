package repository

import (
	"context"
	"database/sql"

	"github.com/blockflix/blockflix/internal/model"
)

// ActorRepo manages persistence for actors and the films_actors
// association table.
type ActorRepo struct {
	db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the given DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo { return &ActorRepo{db: db} }

// BulkCreateTx inserts actors inside the caller's transaction, keeping
// the dataset-assigned ids.
func (r *ActorRepo) BulkCreateTx(ctx context.Context, tx *sql.Tx, actors []model.Actor) error {
	args := make([]any, 0, len(actors)*3)
	for _, a := range actors {
		args = append(args, a.ID, a.FirstName, a.LastName)
	}
	return execBulk(ctx, tx, `INSERT INTO actors (id, first_name, last_name) VALUES`, "(?,?,?)", 3, args)
}

// BulkCreateFilmActorsTx writes the (actor, film) association pairs.
// It must run only after the actors and films rows are committed so
// the foreign keys resolve.
func (r *ActorRepo) BulkCreateFilmActorsTx(ctx context.Context, tx *sql.Tx, pairs []model.FilmActor) error {
	args := make([]any, 0, len(pairs)*2)
	for _, p := range pairs {
		args = append(args, p.ActorID, p.FilmID)
	}
	return execBulk(ctx, tx, `INSERT INTO films_actors (actor_id, film_id) VALUES`, "(?,?)", 2, args)
}
