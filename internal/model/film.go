package model

import "time"

// Film represents a row in the `films` table.  Films are imported once
// from the external movie dataset and are immutable afterwards; only
// the catalog import writes to this table.  Optional columns are
// modelled as pointers so that a missing value maps to NULL rather
// than a zero value that the rental simulator could misread (a zero
// release date would make every film eligible from year 1).
//
// Fields:
//  ID          – primary key, taken from the dataset (not auto-generated).
//  Title       – original title, truncated to 45 characters on import.
//  Description – plot overview, may be empty.
//  PosterURL   – full CDN URL of the poster image (nullable).
//  ReleaseDate – release date (nullable; only set when the dataset value
//                looks like a full YYYY-MM-DD string).
//  Popularity  – dataset popularity score; 0 when unparseable.
//  Length      – runtime in minutes (nullable).
//  LastUpdate  – timestamp of last row update.
type Film struct {
	ID          uint64     // films.id
	Title       string     // films.title
	Description string     // films.description
	PosterURL   *string    // films.poster_url (nullable)
	ReleaseDate *time.Time // films.release_date (nullable)
	Popularity  float64    // films.popularity
	Length      *int       // films.length (nullable, minutes)
	LastUpdate  time.Time  // films.last_update
}

// FilmActor links a film to one of its cast members.  One row is
// written per (film, actor) pair observed during catalog import.
type FilmActor struct {
	ID      uint64 // films_actors.id
	ActorID uint64 // films_actors.actor_id
	FilmID  uint64 // films_actors.film_id
}

// FilmCategory links a film to a genre category.
type FilmCategory struct {
	ID         uint64 // films_categories.id
	CategoryID uint64 // films_categories.category_id
	FilmID     uint64 // films_categories.film_id
}
