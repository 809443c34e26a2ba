package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VocabularyEntry is one row of source data: a word pair and a sentence pair
// in the two languages of the vocabulary file.
//
// Entries are created once at load time and never mutated afterward.
type VocabularyEntry struct {
	SourceWord     string `json:"source_word" validate:"required"`
	TargetWord     string `json:"target_word" validate:"required"`
	SourceSentence string `json:"source_sentence" validate:"required"`
	TargetSentence string `json:"target_sentence" validate:"required"`

	// Line is the 1-based line of the source file the entry was read from.
	Line int `json:"line,omitempty"`
}

// NewVocabularyEntry trims the four fields and validates the result.
// Returns an error wrapping ErrMalformedRow if any field is empty.
func NewVocabularyEntry(sourceWord, targetWord, sourceSentence, targetSentence string) (*VocabularyEntry, error) {
	entry := &VocabularyEntry{
		SourceWord:     strings.TrimSpace(sourceWord),
		TargetWord:     strings.TrimSpace(targetWord),
		SourceSentence: strings.TrimSpace(sourceSentence),
		TargetSentence: strings.TrimSpace(targetSentence),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks that all four fields are non-empty after trimming.
func (e *VocabularyEntry) Validate() error {
	trimmed := VocabularyEntry{
		SourceWord:     strings.TrimSpace(e.SourceWord),
		TargetWord:     strings.TrimSpace(e.TargetWord),
		SourceSentence: strings.TrimSpace(e.SourceSentence),
		TargetSentence: strings.TrimSpace(e.TargetSentence),
	}

	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	return nil
}
