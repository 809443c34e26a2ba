// Package domain contains the core entities and errors of the vocabulary
// trainer. It represents the heart of the system, independent of how the
// vocabulary is fetched or how exercises are presented.
package domain
