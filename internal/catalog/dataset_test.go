package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const moviesCSV = `adult,genres,id,original_title,overview,popularity,poster_path,release_date,runtime
False,"[{'id': 16, 'name': 'Animation'}]",862,Toy Story,A cowboy doll.,21.9,/p.jpg,1995-10-30,81.0
False,"[{'id': 35, 'name': 'Comedy'}]",8844,Jumanji,A board game.,17.0,/q.jpg,1995-12-15,104.0
`

const creditsCSV = `cast,crew,id
"[{'id': 31, 'name': 'Tom Hanks'}]","[]",862
"[{'id': 2157, 'name': 'Robin Williams'}]","[]",8844
`

func TestLoadDatasetJoinsByPosition(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies_metadata.csv", moviesCSV)
	credits := writeFile(t, dir, "credits.csv", creditsCSV)

	records, err := LoadDataset(movies, credits)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "862", records[0].ID)
	assert.Equal(t, "Toy Story", records[0].OriginalTitle)
	assert.Equal(t, `[{'id': 31, 'name': 'Tom Hanks'}]`, records[0].Cast)
	assert.Equal(t, "8844", records[1].ID)
	assert.Equal(t, `[{'id': 2157, 'name': 'Robin Williams'}]`, records[1].Cast)
}

func TestLoadDatasetUnevenLengths(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies_metadata.csv", moviesCSV)
	// Only one credits row: the second metadata row has no partner.
	credits := writeFile(t, dir, "credits.csv", `cast,crew,id
"[{'id': 31, 'name': 'Tom Hanks'}]","[]",862
`)

	records, err := LoadDataset(movies, credits)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "862", records[0].ID)
}

func TestLoadDatasetRaggedRow(t *testing.T) {
	dir := t.TempDir()
	// The second row is short; missing fields come back empty.
	movies := writeFile(t, dir, "movies_metadata.csv", `adult,genres,id,original_title,overview,popularity,poster_path,release_date,runtime
False,"[]",1,Short Row
`)
	credits := writeFile(t, dir, "credits.csv", `cast,crew,id
"[]","[]",1
`)

	records, err := LoadDataset(movies, credits)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
	assert.Empty(t, records[0].ReleaseDate)
	assert.Empty(t, records[0].Runtime)
}

func TestLoadDatasetMissingColumn(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies_metadata.csv", "id,original_title\n1,x\n")
	credits := writeFile(t, dir, "credits.csv", creditsCSV)

	_, err := LoadDataset(movies, credits)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoadDatasetMissingFile(t *testing.T) {
	dir := t.TempDir()
	credits := writeFile(t, dir, "credits.csv", creditsCSV)

	_, err := LoadDataset(filepath.Join(dir, "nope.csv"), credits)
	assert.Error(t, err)
}
