package exercise

import (
	"fmt"
	"strings"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Blank is the placeholder inserted into fill-in-the-blank questions.
const Blank = "_____"

// definition is one row of the dispatch table.
type definition struct {
	prompt   string
	shape    InputShape
	question func(domain.VocabularyEntry) string
	answer   func(domain.VocabularyEntry) string
}

var catalog = map[Kind]definition{
	KindWordTranslation: {
		prompt:   "Translate this word:",
		shape:    InputShort,
		question: func(e domain.VocabularyEntry) string { return e.SourceWord },
		answer:   func(e domain.VocabularyEntry) string { return e.TargetWord },
	},
	KindSourceToTargetSentence: {
		prompt:   "Translate this sentence:",
		shape:    InputLong,
		question: func(e domain.VocabularyEntry) string { return e.SourceSentence },
		answer:   func(e domain.VocabularyEntry) string { return e.TargetSentence },
	},
	KindTargetToSourceSentence: {
		prompt:   "Translate this sentence back:",
		shape:    InputLong,
		question: func(e domain.VocabularyEntry) string { return e.TargetSentence },
		answer:   func(e domain.VocabularyEntry) string { return e.SourceSentence },
	},
	KindFillInBlank: {
		prompt:   "Fill in the blank with the translation:",
		shape:    InputShort,
		question: fillInBlank,
		answer:   func(e domain.VocabularyEntry) string { return e.TargetWord },
	},
}

// definitionFor panics on an unknown kind. Kinds only enter the system
// through the catalog, so reaching the panic is a programming error.
func definitionFor(k Kind) definition {
	def, ok := catalog[k]
	if !ok {
		// ALLOW-PANIC: kinds are a closed set
		panic(fmt.Sprintf("exercise: %v %q", ErrUnknownKind, string(k)))
	}
	return def
}

// fillInBlank replaces only the first verbatim occurrence of the target
// word. When the word does not occur (inflection, casing) the sentence is
// returned unchanged.
func fillInBlank(e domain.VocabularyEntry) string {
	return strings.Replace(e.SourceSentence, e.TargetWord, Blank, 1)
}

// Question returns the text the learner has to answer.
func Question(k Kind, entry domain.VocabularyEntry) string {
	return definitionFor(k).question(entry)
}

// ExpectedAnswer returns the reference answer revealed after a submission.
func ExpectedAnswer(k Kind, entry domain.VocabularyEntry) string {
	return definitionFor(k).answer(entry)
}

// Check reports whether input is an accepted answer for the kind and entry.
func Check(k Kind, entry domain.VocabularyEntry, input string) bool {
	return Equivalent(input, ExpectedAnswer(k, entry))
}

// HasBlank reports whether the fill-in-the-blank question for entry actually
// contains a blank. It is always false for the other kinds.
func HasBlank(k Kind, entry domain.VocabularyEntry) bool {
	return k == KindFillInBlank && strings.Contains(entry.SourceSentence, entry.TargetWord)
}
