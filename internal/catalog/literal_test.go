package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntriesSimpleList(t *testing.T) {
	in := `[{'id': 16, 'name': 'Animation'}, {'id': 35, 'name': 'Comedy'}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{ID: 16, Name: "Animation"}, entries[0])
	assert.Equal(t, Entry{ID: 35, Name: "Comedy"}, entries[1])
}

func TestParseEntriesIgnoresExtraKeys(t *testing.T) {
	in := `[{'cast_id': 14, 'character': 'Woody (voice)', 'credit_id': '52fe4284c3a36847f8024f95', 'gender': 2, 'id': 31, 'name': 'Tom Hanks', 'order': 0, 'profile_path': '/pQFoyx7rp09CJTAb932F2g8Nlho.jpg'}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{ID: 31, Name: "Tom Hanks"}, entries[0])
}

func TestParseEntriesDoubleQuotedStrings(t *testing.T) {
	// Values containing an apostrophe are double-quoted in the dataset.
	in := `[{'id': 5, 'name': "D'Angelo Barksdale"}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "D'Angelo Barksdale", entries[0].Name)
}

func TestParseEntriesEscapes(t *testing.T) {
	in := `[{'id': 1, 'name': 'O\'Brien'}, {'id': 2, 'name': 'Renée'}, {'id': 3, 'name': 'A\xe9B'}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "O'Brien", entries[0].Name)
	assert.Equal(t, "Renée", entries[1].Name)
	assert.Equal(t, "AéB", entries[2].Name)
}

func TestParseEntriesNoneAndBools(t *testing.T) {
	in := `[{'id': 7, 'name': 'X', 'profile_path': None, 'adult': False}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(7), entries[0].ID)
}

func TestParseEntriesEmptyInputs(t *testing.T) {
	for _, in := range []string{"", "   ", "[]"} {
		entries, err := ParseEntries(in)
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, entries)
	}
}

func TestParseEntriesSkipsEntriesWithoutIDOrName(t *testing.T) {
	in := `[{'id': 1}, {'name': 'solo'}, {'id': 2, 'name': 'kept'}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{ID: 2, Name: "kept"}, entries[0])
}

func TestParseEntriesRejectsMalformedInput(t *testing.T) {
	cases := []string{
		`[{'id': 1, 'name': 'x'}`, // unterminated list
		`{'id': 1}`,               // a bare dict, not a list
		`[{'id': 1 'name': 'x'}]`, // missing comma
		`[{'id': }]`,              // missing value
		`[{'id': 1}] extra`,       // trailing data
	}
	for _, in := range cases {
		_, err := ParseEntries(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseEntriesNestedValues(t *testing.T) {
	in := `[{'id': 9, 'name': 'Nested', 'extra': [{'id': 1}], 'meta': {'k': 'v'}}]`
	entries, err := ParseEntries(in)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{ID: 9, Name: "Nested"}, entries[0])
}
