package vocabcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhofer/wortkarten/models"
)

func TestParse(t *testing.T) {
	input := "word,type\nlaufen,verb\nHaus,noun\nschnell,\n"

	entries, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.VocabularyEntry{Word: "laufen", Type: models.TypeVerb, Row: 1}, entries[0])
	assert.Equal(t, models.VocabularyEntry{Word: "Haus", Type: models.TypeNoun, Row: 2}, entries[1])
	assert.Equal(t, models.VocabularyEntry{Word: "schnell", Type: models.TypeUnset, Row: 3}, entries[2])
}

func TestParse_HeaderCaseInsensitive(t *testing.T) {
	entries, err := Parse([]byte("Word,TYPE\nlaufen,Verb\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.TypeVerb, entries[0].Type)
}

func TestParse_TypeColumnOptional(t *testing.T) {
	entries, err := Parse([]byte("word\nlaufen\nHaus\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, models.TypeUnset, e.Type)
	}
}

func TestParse_MissingWordColumn(t *testing.T) {
	_, err := Parse([]byte("name,type\nlaufen,verb\n"))
	require.ErrorIs(t, err, ErrMissingWordColumn)
}

func TestParse_CollectsAllRowErrors(t *testing.T) {
	input := "word,type\n,verb\nHaus,gerund\nlaufen,verb\n"

	_, err := Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1: empty word")
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "gerund")
}

func TestParse_StripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("word\nHaus\n")...)

	entries, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Haus", entries[0].Word)
}
