package api

import (
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/service/session"
)

// SubmitAnswerRequest is the body of POST /api/exercise/answer. Answer is a
// pointer so a missing field is a bad request while an empty string reaches
// the session and is reported as not accepted.
type SubmitAnswerRequest struct {
	Answer *string `json:"answer" validate:"required,max=2000"`
}

// AdvanceResponse is returned by POST /api/exercise/advance.
type AdvanceResponse struct {
	Status session.Status `json:"status"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	State      service.State `json:"state"`
	EntryCount int           `json:"entry_count"`
	DeckSize   int           `json:"deck_size"`
	Dropped    int           `json:"dropped_rows"`
	SessionID  string        `json:"session_id,omitempty"`
	// Error is the safe message for a failed load.
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
