// Package testutils holds helpers shared by tests across packages: a
// memory-backed slog handler, vocabulary fixtures, and HTTP request helpers.
// It is imported only from _test.go files.
package testutils
