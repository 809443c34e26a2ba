package deck

import (
	"fmt"
	"testing"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/exercise"
	"github.com/phrazzld/vocab-drill/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeckSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 7, 25} {
		d, err := Build(testutils.SampleEntries(n), NewRand(42))
		require.NoError(t, err)
		assert.Equal(t, 4*n, d.Len(), "deck for %d entries", n)
		assert.Equal(t, n, d.EntryCount())
	}
}

func TestBuildDeckCompleteness(t *testing.T) {
	t.Parallel()

	entries := testutils.SampleEntries(5)
	d, err := Build(entries, NewRand(7))
	require.NoError(t, err)

	type pair struct {
		word string
		kind exercise.Kind
	}
	seen := make(map[pair]int)
	for pos, inst := range d.Instances() {
		assert.Equal(t, pos, inst.Position)
		seen[pair{inst.Entry.TargetWord, inst.Kind}]++
	}

	require.Len(t, seen, len(entries)*4)
	for _, e := range entries {
		for _, k := range exercise.Kinds() {
			assert.Equal(t, 1, seen[pair{e.TargetWord, k}], "%s/%s", e.TargetWord, k)
		}
	}
}

func TestBuildRejectsEmptyEntries(t *testing.T) {
	t.Parallel()

	d, err := Build(nil, NewRand(1))
	assert.Nil(t, d)
	assert.ErrorIs(t, err, domain.ErrVocabularyEmpty)
}

func TestBuildIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	keys := func(seed uint64) []string {
		d, err := Build(testutils.SampleEntries(3), NewRand(seed))
		require.NoError(t, err)
		out := make([]string, 0, d.Len())
		for _, inst := range d.Instances() {
			out = append(out, fmt.Sprintf("%s/%s", inst.Entry.TargetWord, inst.Kind))
		}
		return out
	}

	assert.Equal(t, keys(99), keys(99))
	assert.NotEqual(t, keys(99), keys(100))
}

func TestBuildCopiesEntries(t *testing.T) {
	t.Parallel()

	entries := testutils.SampleEntries(2)
	d, err := Build(entries, NewRand(3))
	require.NoError(t, err)

	entries[0].TargetWord = "mutated"
	for _, inst := range d.Instances() {
		assert.NotEqual(t, "mutated", inst.Entry.TargetWord)
	}
}

func TestInstanceKeyAndDelegation(t *testing.T) {
	t.Parallel()

	entry := domain.VocabularyEntry{
		SourceWord:     "Hund",
		TargetWord:     "dog",
		SourceSentence: "Der Hund läuft",
		TargetSentence: "The dog runs",
	}
	inst := Instance{Entry: &entry, Kind: exercise.KindWordTranslation, Position: 3}

	assert.Equal(t, "dog-word_translation-3", inst.Key())
	assert.Equal(t, "Hund", inst.Question())
	assert.Equal(t, "dog", inst.ExpectedAnswer())
	assert.True(t, inst.Check("Dog."))
}

func TestDeckAt(t *testing.T) {
	t.Parallel()

	d, err := Build(testutils.SampleEntries(1), NewRand(5))
	require.NoError(t, err)

	first, ok := d.At(0)
	require.True(t, ok)
	assert.Equal(t, 0, first.Position)

	_, ok = d.At(-1)
	assert.False(t, ok)
	_, ok = d.At(d.Len())
	assert.False(t, ok)
}

func TestLoadDeck(t *testing.T) {
	t.Parallel()

	raw := "german;english;satz;sentence\n" +
		"Hund;dog;Der Hund läuft;The dog runs\n" +
		"Katze;cat;Die Katze schläft;\n" +
		"Maus;mouse;Die Maus piepst;The mouse squeaks\n"

	d, report, err := LoadDeck(raw, NewRand(11))
	require.NoError(t, err)
	assert.Equal(t, 8, d.Len())
	assert.Equal(t, 1, report.Dropped())

	_, _, err = LoadDeck("german;english;satz;sentence\n", NewRand(11))
	assert.ErrorIs(t, err, domain.ErrVocabularyEmpty)
}

func TestLoadDeckBlanksTargetWordInSentence(t *testing.T) {
	t.Parallel()

	d, _, err := LoadDeck(testutils.SampleVocabulary, NewRand(1))
	require.NoError(t, err)

	want := map[string]string{
		"The _____ runs.":   "dog",
		"The _____ sleeps.": "cat",
	}
	got := make(map[string]string)
	for _, inst := range d.Instances() {
		if inst.Kind != exercise.KindFillInBlank {
			continue
		}
		assert.True(t, exercise.HasBlank(inst.Kind, *inst.Entry))
		got[inst.Question()] = inst.ExpectedAnswer()
	}
	assert.Equal(t, want, got)
}

func TestDeckEntriesIsCopy(t *testing.T) {
	t.Parallel()

	entries := testutils.SampleEntries(3)
	d, err := Build(entries, NewRand(2))
	require.NoError(t, err)

	got := d.Entries()
	assert.Equal(t, entries, got)

	got[0].TargetWord = "changed"
	assert.Equal(t, entries[0].TargetWord, d.Entries()[0].TargetWord)
}
