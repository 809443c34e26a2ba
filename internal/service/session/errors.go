package session

import "errors"

// Common error types for Session
var (
	// ErrSessionFinished indicates the cursor has passed the end of the deck.
	ErrSessionFinished = errors.New("session finished: no exercises left")

	// ErrAlreadyRevealed indicates an answer was already scored for the
	// current exercise.
	ErrAlreadyRevealed = errors.New("answer already submitted for this exercise")

	// ErrNilDeck indicates a session was created without a deck.
	ErrNilDeck = errors.New("deck cannot be nil")
)
