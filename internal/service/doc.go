// Package service owns the trainer lifecycle. It loads the vocabulary once,
// builds a deck and a session over it, and serializes every session action
// behind one mutex so concurrent callers observe each action complete.
//
// Subpackage session holds the single-threaded session state machine.
package service
