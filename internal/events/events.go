package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by a session.
const (
	TypeAnswerSubmitted  = "answer_submitted"
	TypeExerciseAdvanced = "exercise_advanced"
	TypeSessionFinished  = "session_finished"
)

// SessionEvent records one session transition.
type SessionEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// SessionID identifies the session that emitted the event
	SessionID uuid.UUID `json:"session_id"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *SessionEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewSessionEvent creates a new SessionEvent with the specified type and payload.
func NewSessionEvent(eventType string, sessionID uuid.UUID, payload interface{}) (*SessionEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &SessionEvent{
		ID:        uuid.New(),
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SessionEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the session to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SessionEvent) error
}
