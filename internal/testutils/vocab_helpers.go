package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/stretchr/testify/require"
)

// SampleVocabulary is a small well-formed vocabulary file with two entries.
const SampleVocabulary = `german;english;satz;sentence
Hund;dog;Der Hund läuft.;The dog runs.
Katze;cat;Die Katze schläft.;The cat sleeps.
`

// SampleEntries returns n distinct valid entries.
func SampleEntries(n int) []domain.VocabularyEntry {
	entries := make([]domain.VocabularyEntry, n)
	for i := range entries {
		word := string(rune('a'+i%26)) + string(rune('a'+i/26))
		entries[i] = domain.VocabularyEntry{
			SourceWord:     "Quelle" + word,
			TargetWord:     "target" + word,
			SourceSentence: "Satz mit target" + word + " hier",
			TargetSentence: "Sentence with target" + word + " here",
			Line:           i + 2,
		}
	}
	return entries
}

// WriteVocabularyFile writes content to vocab.csv in a temp dir and returns
// its path. The directory is removed when the test ends.
func WriteVocabularyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
