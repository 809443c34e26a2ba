package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry represents a simplified log record for testing
type LogEntry map[string]interface{}

// TestSlogHandler is a memory-backed slog.Handler for testing. Loggers
// derived with With share the same entry buffer.
type TestSlogHandler struct {
	store *entryStore
	attrs []slog.Attr
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewTestSlogHandler creates a new memory-backed slog handler
func NewTestSlogHandler() *TestSlogHandler {
	return &TestSlogHandler{store: &entryStore{}}
}

// NewTestLogger returns a logger writing to h.
func (h *TestSlogHandler) NewTestLogger() *slog.Logger {
	return slog.New(h)
}

// Enabled satisfies slog.Handler interface
func (h *TestSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler interface
func (h *TestSlogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := make(LogEntry)
	entry["level"] = r.Level.String()
	entry["message"] = r.Message
	for _, attr := range h.attrs {
		entry[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.entries = append(h.store.entries, entry)
	return nil
}

// WithAttrs satisfies slog.Handler interface
func (h *TestSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &TestSlogHandler{store: h.store, attrs: combined}
}

// WithGroup satisfies slog.Handler interface. Groups are flattened.
func (h *TestSlogHandler) WithGroup(string) slog.Handler {
	return h
}

// Entries returns all captured log entries
func (h *TestSlogHandler) Entries() []LogEntry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	result := make([]LogEntry, len(h.store.entries))
	copy(result, h.store.entries)
	return result
}

// FindByMessage returns the captured entries with the given message.
func (h *TestSlogHandler) FindByMessage(message string) []LogEntry {
	var out []LogEntry
	for _, e := range h.Entries() {
		if e["message"] == message {
			out = append(out, e)
		}
	}
	return out
}
