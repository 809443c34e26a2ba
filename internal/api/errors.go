package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/service/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Loading or failed load
	case errors.Is(err, service.ErrNotReady),
		errors.Is(err, domain.ErrVocabularyUnreachable),
		errors.Is(err, domain.ErrVocabularyEmpty):
		return http.StatusServiceUnavailable

	// Deck exhausted
	case errors.Is(err, session.ErrSessionFinished):
		return http.StatusGone

	// Bad request errors
	case errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, domain.ErrEmptySubmission):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrVocabularyUnreachable):
		return "Vocabulary could not be loaded"

	case errors.Is(err, domain.ErrVocabularyEmpty):
		return "Vocabulary contains no usable entries"

	case errors.Is(err, service.ErrNotReady):
		return "Vocabulary is still loading"

	case errors.Is(err, session.ErrSessionFinished):
		return "Session finished"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, domain.ErrEmptySubmission):
		return "Answer cannot be empty"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the mapped status code and a safe message for err.
// A non-empty message overrides the default safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'SubmitAnswerRequest.Answer' Error:Field validation for 'Answer' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
