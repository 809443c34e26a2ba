package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabularyEntry(t *testing.T) {
	t.Parallel()

	entry, err := NewVocabularyEntry("  Hund ", "dog", "Der Hund läuft", " The dog runs\t")
	require.NoError(t, err)

	assert.Equal(t, "Hund", entry.SourceWord)
	assert.Equal(t, "dog", entry.TargetWord)
	assert.Equal(t, "Der Hund läuft", entry.SourceSentence)
	assert.Equal(t, "The dog runs", entry.TargetSentence)
}

func TestNewVocabularyEntryRejectsBlankFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args [4]string
	}{
		{"empty source word", [4]string{"", "dog", "Der Hund", "The dog"}},
		{"blank target word", [4]string{"Hund", "   ", "Der Hund", "The dog"}},
		{"empty source sentence", [4]string{"Hund", "dog", "", "The dog"}},
		{"blank target sentence", [4]string{"Hund", "dog", "Der Hund", "\t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entry, err := NewVocabularyEntry(tc.args[0], tc.args[1], tc.args[2], tc.args[3])
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestVocabularyEntryValidateIgnoresSurroundingSpace(t *testing.T) {
	t.Parallel()

	entry := VocabularyEntry{
		SourceWord:     "Katze",
		TargetWord:     " ",
		SourceSentence: "Die Katze schläft",
		TargetSentence: "The cat sleeps",
	}
	assert.ErrorIs(t, entry.Validate(), ErrMalformedRow)

	entry.TargetWord = " cat "
	assert.NoError(t, entry.Validate())
}

func TestLoadErrorMatchesKindAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(NewUnreachableError(cause))

	assert.ErrorIs(t, err, ErrVocabularyUnreachable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrVocabularyEmpty)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, LoadErrorUnreachable, loadErr.Kind)
	assert.Contains(t, err.Error(), "unreachable")

	empty := error(NewEmptyError(ErrMissingColumns))
	assert.ErrorIs(t, empty, ErrVocabularyEmpty)
	assert.ErrorIs(t, empty, ErrMissingColumns)
	assert.NotErrorIs(t, empty, ErrVocabularyUnreachable)
}
