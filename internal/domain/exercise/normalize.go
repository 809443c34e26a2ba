package exercise

import "strings"

// ignoredPunctuation is stripped from both sides of every comparison.
const ignoredPunctuation = `.,!?;:'"()`

// Normalize canonicalizes a free-text answer: lowercase, strip the ignored
// punctuation, collapse whitespace runs to one space and trim the ends.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(ignoredPunctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Equivalent reports whether input and expected have the same normalized form.
func Equivalent(input, expected string) bool {
	return Normalize(input) == Normalize(expected)
}
