// Package session holds the scoring state of one pass through a deck.
//
// A Session is single-owner and not safe for concurrent use; callers that
// share one (the trainer service) serialize access themselves. Every
// transition runs to completion before returning.
//
// Per exercise the session moves Answering -> Revealed on a non-empty
// submission and back to Answering on Advance. Advancing past the last deck
// position finishes the session; Finished is terminal and the score no
// longer changes. A new shuffle requires a new Session.
package session
