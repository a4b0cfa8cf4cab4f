package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/blockflix/blockflix/internal/model"
)

// posterBaseURL is the CDN template a poster path is appended to.
const posterBaseURL = "https://image.tmdb.org/t/p/w185_and_h278_bestv2"

const (
	maxTitleLen    = 45
	maxCategoryLen = 25
)

// NameSplitter turns a full cast-member name into first/last parts.
// It is a named strategy so that consumers who care about correct
// surname handling can swap it out without touching the importer.
type NameSplitter func(full string) (first, last string)

// SplitOnLastSpace is the default splitter: every whitespace token but
// the last joins into the first name, the final token becomes the last
// name.  This mis-splits multi-word surnames ("Robert Downey Jr." ->
// "Robert Downey" / "Jr."), which is the documented, compatible
// behavior of the historical import.
func SplitOnLastSpace(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

// Catalog is the normalized result of parsing the dataset: deduplicated
// entity sets plus the association pairs between them.  Slices keep the
// dataset encounter order so that imports are stable run to run.
type Catalog struct {
	Films          []model.Film
	Actors         []model.Actor
	Categories     []model.Category
	FilmActors     []model.FilmActor
	FilmCategories []model.FilmCategory
}

// Importer parses joined dataset records into a Catalog.
type Importer struct {
	// SplitName splits cast names; defaults to SplitOnLastSpace.
	SplitName NameSplitter
}

// Parse applies the import rules to every record:
//
//   - rows missing cast or genres data are dropped,
//   - rows whose id is not numeric are dropped (the raw dataset has a
//     handful of shifted rows where the id column holds a date),
//   - the first occurrence of a film/actor/category id wins; later
//     occurrences contribute only new association pairs,
//   - each (film, actor) and (film, category) pair is recorded once.
//
// Unparseable genres/cast cells abort the import: they indicate a
// corrupt file rather than the expected sprinkling of missing values.
func (imp *Importer) Parse(records []Record) (*Catalog, error) {
	split := imp.SplitName
	if split == nil {
		split = SplitOnLastSpace
	}

	cat := &Catalog{}
	seenFilms := map[uint64]bool{}
	seenActors := map[uint64]bool{}
	seenCategories := map[uint64]bool{}
	seenFilmActors := map[[2]uint64]bool{}
	seenFilmCategories := map[[2]uint64]bool{}

	for _, rec := range records {
		if rec.Cast == "" || rec.Genres == "" {
			continue
		}
		filmID, err := strconv.ParseUint(strings.TrimSpace(rec.ID), 10, 64)
		if err != nil {
			continue
		}

		if !seenFilms[filmID] {
			seenFilms[filmID] = true
			cat.Films = append(cat.Films, buildFilm(filmID, rec))
		}

		genres, err := ParseEntries(rec.Genres)
		if err != nil {
			return nil, err
		}
		for _, g := range genres {
			if !seenCategories[g.ID] {
				seenCategories[g.ID] = true
				cat.Categories = append(cat.Categories, model.Category{
					ID:   g.ID,
					Name: truncate(g.Name, maxCategoryLen),
				})
			}
			pair := [2]uint64{g.ID, filmID}
			if !seenFilmCategories[pair] {
				seenFilmCategories[pair] = true
				cat.FilmCategories = append(cat.FilmCategories, model.FilmCategory{CategoryID: g.ID, FilmID: filmID})
			}
		}

		cast, err := ParseEntries(rec.Cast)
		if err != nil {
			return nil, err
		}
		for _, a := range cast {
			if !seenActors[a.ID] {
				seenActors[a.ID] = true
				first, last := split(a.Name)
				cat.Actors = append(cat.Actors, model.Actor{ID: a.ID, FirstName: first, LastName: last})
			}
			pair := [2]uint64{a.ID, filmID}
			if !seenFilmActors[pair] {
				seenFilmActors[pair] = true
				cat.FilmActors = append(cat.FilmActors, model.FilmActor{ActorID: a.ID, FilmID: filmID})
			}
		}
	}
	return cat, nil
}

// buildFilm applies the per-field defaulting rules of the import.
func buildFilm(id uint64, rec Record) model.Film {
	f := model.Film{
		ID:          id,
		Title:       truncate(rec.OriginalTitle, maxTitleLen),
		Description: rec.Overview,
	}
	if strings.Contains(rec.PosterPath, "jpg") {
		url := posterBaseURL + rec.PosterPath
		f.PosterURL = &url
	}
	// Only a string of exactly the YYYY-MM-DD length is accepted as a
	// release date; it must additionally parse as a real date here
	// because the value goes into a typed column.
	if len(rec.ReleaseDate) == 10 {
		if d, err := time.Parse("2006-01-02", rec.ReleaseDate); err == nil {
			f.ReleaseDate = &d
		}
	}
	if p, err := strconv.ParseFloat(strings.TrimSpace(rec.Popularity), 64); err == nil {
		f.Popularity = p
	}
	// Runtime comes in as a float ("81.0"); an int cast through float
	// mirrors the historical parse, defaulting to NULL on failure.
	if r, err := strconv.ParseFloat(strings.TrimSpace(rec.Runtime), 64); err == nil {
		length := int(r)
		f.Length = &length
	}
	return f
}

// truncate cuts s to at most n characters (not bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
