// Package deck builds the exercise sequence for a session: every entry under
// every catalog kind exactly once, in a uniformly random order.
//
// The random source is always injected. Tests pass a seeded generator to get
// exact orderings; production seeds from the configuration or from the
// runtime's entropy source.
package deck
