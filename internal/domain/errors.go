// Package domain defines the core entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrVocabularyUnreachable is returned when the vocabulary source could not
	// be retrieved.
	ErrVocabularyUnreachable = errors.New("vocabulary source unreachable")

	// ErrVocabularyEmpty is returned when the vocabulary source parsed to zero
	// usable entries.
	ErrVocabularyEmpty = errors.New("vocabulary contains no usable entries")

	// ErrMissingColumns is returned when the header row does not name all four
	// vocabulary fields. It is always wrapped in a LoadError of kind Empty.
	ErrMissingColumns = errors.New("vocabulary header is missing required columns")

	// ErrMalformedRow is returned when a single row fails validation.
	// Callers drop the row and continue.
	ErrMalformedRow = errors.New("malformed vocabulary row")

	// ErrEmptySubmission is returned when an answer is blank after trimming.
	ErrEmptySubmission = errors.New("answer cannot be empty")
)

// LoadErrorKind classifies fatal load failures.
type LoadErrorKind string

// Possible load error kinds
const (
	LoadErrorUnreachable LoadErrorKind = "unreachable"
	LoadErrorEmpty       LoadErrorKind = "empty"
)

// LoadError is the only error that ever reaches the user. It wraps the
// underlying cause so callers can use errors.Is against both the kind
// sentinel and the cause.
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

// NewUnreachableError returns a LoadError for a source that could not be read.
func NewUnreachableError(err error) *LoadError {
	return &LoadError{Kind: LoadErrorUnreachable, Err: err}
}

// NewEmptyError returns a LoadError for a source with no usable entries.
func NewEmptyError(err error) *LoadError {
	return &LoadError{Kind: LoadErrorEmpty, Err: err}
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load vocabulary (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("load vocabulary (%s)", e.Kind)
}

// Unwrap returns the wrapped cause to support errors.Is/errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching this error's kind.
func (e *LoadError) Is(target error) bool {
	switch e.Kind {
	case LoadErrorUnreachable:
		return target == ErrVocabularyUnreachable
	case LoadErrorEmpty:
		return target == ErrVocabularyEmpty
	}
	return false
}
