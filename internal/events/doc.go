// Package events provides types and interfaces for session events.
//
// A session emits an event after every state transition that changes what the
// learner sees (an answer was scored, the cursor advanced, the deck ran out).
// Emitters dispatch to registered handlers without the session knowing who
// listens, which keeps logging and any future progress tracking out of the
// scoring code.
//
// The primary components are:
// - SessionEvent: a single transition with a JSON payload
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
