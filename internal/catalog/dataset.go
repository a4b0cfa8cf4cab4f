// Package catalog implements the one-time import of the external movie
// dataset (movies_metadata.csv + credits.csv) into normalized Film,
// Actor and Category entities.  The two files are row-aligned: the
// n-th credits row belongs to the n-th metadata row, so the loader
// joins them by position rather than by key.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one joined dataset row: the film metadata columns this
// importer cares about plus the cast and genres literal lists from the
// credits file.
type Record struct {
	ID            string
	OriginalTitle string
	Overview      string
	PosterPath    string
	ReleaseDate   string
	Popularity    string
	Runtime       string
	Genres        string
	Cast          string
}

// LoadDataset reads the two CSV files and joins them row by row.  The
// join is positional; if the files have different lengths the extra
// rows of the longer one are dropped.  A missing column in either
// header is a fatal error since the dataset is then not the expected
// export.
func LoadDataset(moviesPath, creditsPath string) ([]Record, error) {
	movies, err := readCSV(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("read movies metadata: %w", err)
	}
	credits, err := readCSV(creditsPath)
	if err != nil {
		return nil, fmt.Errorf("read credits: %w", err)
	}

	mCols, err := columnIndex(movies.header, "id", "original_title", "overview", "poster_path", "release_date", "popularity", "runtime", "genres")
	if err != nil {
		return nil, fmt.Errorf("movies metadata: %w", err)
	}
	cCols, err := columnIndex(credits.header, "cast")
	if err != nil {
		return nil, fmt.Errorf("credits: %w", err)
	}

	n := len(movies.rows)
	if len(credits.rows) < n {
		n = len(credits.rows)
	}
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		m, c := movies.rows[i], credits.rows[i]
		records = append(records, Record{
			ID:            field(m, mCols["id"]),
			OriginalTitle: field(m, mCols["original_title"]),
			Overview:      field(m, mCols["overview"]),
			PosterPath:    field(m, mCols["poster_path"]),
			ReleaseDate:   field(m, mCols["release_date"]),
			Popularity:    field(m, mCols["popularity"]),
			Runtime:       field(m, mCols["runtime"]),
			Genres:        field(m, mCols["genres"]),
			Cast:          field(c, cCols["cast"]),
		})
	}
	return records, nil
}

type csvFile struct {
	header []string
	rows   [][]string
}

// readCSV loads a whole CSV file into memory.  The dataset contains
// ragged rows and stray quotes, so the reader is configured to be
// lenient rather than reject half the file.
func readCSV(path string) (*csvFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return &csvFile{header: header, rows: rows}, nil
}

// columnIndex maps the wanted column names to their positions in the
// header.  It errors on the first missing column.
func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for _, name := range names {
		found := -1
		for i, h := range header {
			if h == name {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("missing column %q", name)
		}
		idx[name] = found
	}
	return idx, nil
}

// field returns row[i] or "" when the ragged row is too short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
