package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) Record {
	return Record{
		ID:            id,
		OriginalTitle: "Toy Story",
		Overview:      "A cowboy doll is profoundly threatened.",
		PosterPath:    "/rhIRbceoE9lR4veEXuwCC2wARtG.jpg",
		ReleaseDate:   "1995-10-30",
		Popularity:    "21.946943",
		Runtime:       "81.0",
		Genres:        `[{'id': 16, 'name': 'Animation'}]`,
		Cast:          `[{'id': 31, 'name': 'Tom Hanks'}]`,
	}
}

func TestParseSingleRecord(t *testing.T) {
	imp := Importer{}
	cat, err := imp.Parse([]Record{record("862")})
	require.NoError(t, err)

	require.Len(t, cat.Films, 1)
	f := cat.Films[0]
	assert.Equal(t, uint64(862), f.ID)
	assert.Equal(t, "Toy Story", f.Title)
	require.NotNil(t, f.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w185_and_h278_bestv2/rhIRbceoE9lR4veEXuwCC2wARtG.jpg", *f.PosterURL)
	require.NotNil(t, f.ReleaseDate)
	assert.Equal(t, "1995-10-30", f.ReleaseDate.Format("2006-01-02"))
	assert.InDelta(t, 21.946943, f.Popularity, 1e-9)
	require.NotNil(t, f.Length)
	assert.Equal(t, 81, *f.Length)

	require.Len(t, cat.Categories, 1)
	assert.Equal(t, "Animation", cat.Categories[0].Name)
	require.Len(t, cat.Actors, 1)
	assert.Equal(t, "Tom", cat.Actors[0].FirstName)
	assert.Equal(t, "Hanks", cat.Actors[0].LastName)
	assert.Len(t, cat.FilmActors, 1)
	assert.Len(t, cat.FilmCategories, 1)
}

func TestParseDropsRowsMissingCastOrGenres(t *testing.T) {
	noCast := record("1")
	noCast.Cast = ""
	noGenres := record("2")
	noGenres.Genres = ""
	kept := record("3")

	imp := Importer{}
	cat, err := imp.Parse([]Record{noCast, noGenres, kept})
	require.NoError(t, err)
	require.Len(t, cat.Films, 1)
	assert.Equal(t, uint64(3), cat.Films[0].ID)
}

func TestParseDropsRowsWithNonNumericID(t *testing.T) {
	shifted := record("1997-08-20")
	imp := Importer{}
	cat, err := imp.Parse([]Record{shifted, record("99")})
	require.NoError(t, err)
	require.Len(t, cat.Films, 1)
	assert.Equal(t, uint64(99), cat.Films[0].ID)
}

func TestParseFirstOccurrenceOfFilmWins(t *testing.T) {
	first := record("5")
	second := record("5")
	second.OriginalTitle = "Different Title"

	imp := Importer{}
	cat, err := imp.Parse([]Record{first, second})
	require.NoError(t, err)
	require.Len(t, cat.Films, 1)
	assert.Equal(t, "Toy Story", cat.Films[0].Title)
}

func TestParseSharedActorAcrossFilms(t *testing.T) {
	a := record("1")
	b := record("2")

	imp := Importer{}
	cat, err := imp.Parse([]Record{a, b})
	require.NoError(t, err)

	// One actor row, one association per film.
	require.Len(t, cat.Actors, 1)
	require.Len(t, cat.FilmActors, 2)
	assert.Equal(t, uint64(1), cat.FilmActors[0].FilmID)
	assert.Equal(t, uint64(2), cat.FilmActors[1].FilmID)
}

func TestParseDeduplicatesAssociationPairs(t *testing.T) {
	rec := record("7")
	rec.Cast = `[{'id': 31, 'name': 'Tom Hanks'}, {'id': 31, 'name': 'Tom Hanks'}]`

	imp := Importer{}
	cat, err := imp.Parse([]Record{rec})
	require.NoError(t, err)
	assert.Len(t, cat.Actors, 1)
	assert.Len(t, cat.FilmActors, 1)
}

func TestBuildFilmDefaults(t *testing.T) {
	rec := record("11")
	rec.PosterPath = ""
	rec.ReleaseDate = ""
	rec.Popularity = "N/A"
	rec.Runtime = ""

	imp := Importer{}
	cat, err := imp.Parse([]Record{rec})
	require.NoError(t, err)
	require.Len(t, cat.Films, 1)
	f := cat.Films[0]
	assert.Nil(t, f.PosterURL)
	assert.Nil(t, f.ReleaseDate)
	assert.Zero(t, f.Popularity)
	assert.Nil(t, f.Length)
}

func TestBuildFilmRejectsBadReleaseDates(t *testing.T) {
	cases := []string{
		"1995-10-3",  // wrong length
		"1995-13-40", // right length, not a date
		"2014",       // year only
	}
	for _, rd := range cases {
		rec := record("20")
		rec.ReleaseDate = rd
		imp := Importer{}
		cat, err := imp.Parse([]Record{rec})
		require.NoError(t, err)
		assert.Nil(t, cat.Films[0].ReleaseDate, "release date %q", rd)
	}
}

func TestBuildFilmPosterRequiresJPEG(t *testing.T) {
	rec := record("21")
	rec.PosterPath = "/poster.png"
	imp := Importer{}
	cat, err := imp.Parse([]Record{rec})
	require.NoError(t, err)
	assert.Nil(t, cat.Films[0].PosterURL)
}

func TestParseTruncatesLongValues(t *testing.T) {
	rec := record("30")
	rec.OriginalTitle = strings.Repeat("é", 60)
	rec.Genres = `[{'id': 99, 'name': '` + strings.Repeat("x", 40) + `'}]`

	imp := Importer{}
	cat, err := imp.Parse([]Record{rec})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", 45), cat.Films[0].Title)
	assert.Equal(t, strings.Repeat("x", 25), cat.Categories[0].Name)
}

func TestParseCorruptCellAbortsImport(t *testing.T) {
	rec := record("40")
	rec.Cast = `[{'id': 1, 'name':`
	imp := Importer{}
	_, err := imp.Parse([]Record{rec})
	assert.Error(t, err)
}

func TestParseCustomNameSplitter(t *testing.T) {
	imp := Importer{SplitName: func(full string) (string, string) {
		return full, ""
	}}
	cat, err := imp.Parse([]Record{record("50")})
	require.NoError(t, err)
	require.Len(t, cat.Actors, 1)
	assert.Equal(t, "Tom Hanks", cat.Actors[0].FirstName)
	assert.Empty(t, cat.Actors[0].LastName)
}

func TestSplitOnLastSpace(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Tom Hanks", "Tom", "Hanks"},
		{"Robert Downey Jr.", "Robert Downey", "Jr."},
		{"Cher", "", "Cher"},
		{"", "", ""},
		{"  spaced   out  ", "spaced", "out"},
	}
	for _, c := range cases {
		first, last := SplitOnLastSpace(c.in)
		assert.Equal(t, c.first, first, "input %q", c.in)
		assert.Equal(t, c.last, last, "input %q", c.in)
	}
}
