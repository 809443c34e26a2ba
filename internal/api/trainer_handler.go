package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/service/session"
)

// Trainer is the subset of service.Trainer the handlers call.
type Trainer interface {
	Status() service.TrainerStatus
	Reset(ctx context.Context) error
	CurrentExercise(ctx context.Context) (session.ExerciseView, error)
	SubmitAnswer(ctx context.Context, input string) (session.SubmitResult, error)
	Advance(ctx context.Context) (session.Status, error)
	Score() (session.ScoreSummary, error)
}

// TrainerHandler serves the exercise session over HTTP.
type TrainerHandler struct {
	trainer Trainer
	logger  *slog.Logger
}

// NewTrainerHandler creates a new TrainerHandler
func NewTrainerHandler(trainer Trainer, logger *slog.Logger) *TrainerHandler {
	if trainer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("trainer cannot be nil for TrainerHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TrainerHandler")
	}

	return &TrainerHandler{
		trainer: trainer,
		logger:  logger.With(slog.String("component", "trainer_handler")),
	}
}

// Health handles GET /health
func (h *TrainerHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetStatus handles GET /api/status. It always answers 200 so a client can
// poll while the vocabulary loads.
func (h *TrainerHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.trainer.Status()

	resp := StatusResponse{
		State:      status.State,
		EntryCount: status.EntryCount,
		DeckSize:   status.DeckSize,
		Dropped:    status.Dropped,
		SessionID:  status.SessionID,
	}
	if status.Error != nil {
		resp.Error = GetSafeErrorMessage(status.Error)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetExercise handles GET /api/exercise
func (h *TrainerHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	view, err := h.trainer.CurrentExercise(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, view)
}

// SubmitAnswer handles POST /api/exercise/answer. A blank answer is not an
// error: it is answered with 200 and accepted=false.
func (h *TrainerHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		msg := "Invalid request format"
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			msg = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msg, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.trainer.SubmitAnswer(r.Context(), *req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !result.Accepted {
		log.Debug("submission not accepted", slog.String("reason", result.Reason))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Advance handles POST /api/exercise/advance
func (h *TrainerHandler) Advance(w http.ResponseWriter, r *http.Request) {
	status, err := h.trainer.Advance(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdvanceResponse{Status: status})
}

// GetScore handles GET /api/score
func (h *TrainerHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.trainer.Score()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, score)
}

// ResetSession handles POST /api/session/reset
func (h *TrainerHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := h.trainer.Reset(r.Context()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("session reset")
	h.GetStatus(w, r)
}
