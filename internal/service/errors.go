package service

import "errors"

// Sentinel errors returned by the Trainer. The API layer maps them to HTTP
// status codes.
var (
	// ErrNotReady indicates the vocabulary is still loading or failed to load.
	// After a failed load the LoadError is wrapped alongside it.
	// API layer should map this to HTTP 503 Service Unavailable.
	ErrNotReady = errors.New("trainer is not ready")

	// ErrAlreadyLoaded indicates Load was called a second time.
	ErrAlreadyLoaded = errors.New("vocabulary already loaded")
)
