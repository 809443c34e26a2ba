package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hund", "hund"},
		{"strips trailing punctuation", "Dog.", "dog"},
		{"strips every ignored mark", `a.b,c!d?e;f:g'h"i(j)k`, "abcdefghijk"},
		{"collapses inner whitespace", "the   dog \t runs", "the dog runs"},
		{"trims ends", "  \n dog \t", "dog"},
		{"keeps other punctuation", "well-known", "well-known"},
		{"keeps umlauts", "Läuft!", "läuft"},
		{"empty", "", ""},
		{"only punctuation", "?!.", ""},
		{"punctuation between words", "Hello, world!", "hello world"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"   ",
		"Hund!",
		"Der Hund läuft.",
		"  (Was)  ist   \"das\"?  ",
		"a . b",
		"ÄÖÜ straße",
		"tab\tand\nnewline",
	}

	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", s)
	}
}

func TestEquivalentIsCaseAndPunctuationInsensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Normalize("hund"), Normalize("Hund!"))
	assert.True(t, Equivalent("Dog.", "dog"))
	assert.True(t, Equivalent("dog", "Dog."))
	assert.True(t, Equivalent("the  DOG runs!", "The dog runs."))
	assert.False(t, Equivalent("dogs", "dog"))
	assert.False(t, Equivalent("", "dog"))
}
