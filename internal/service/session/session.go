package session

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/vocab-drill/internal/deck"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/exercise"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

// Phase is the state of the exercise under the cursor.
type Phase string

// Possible phases
const (
	PhaseAnswering Phase = "answering"
	PhaseRevealed  Phase = "revealed"
	PhaseFinished  Phase = "finished"
)

// Status is the result of Advance.
type Status string

// Possible statuses
const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// ExerciseView is what the presentation layer renders for the current
// exercise. CorrectAnswer, WasCorrect and Feedback are set only once the
// exercise is revealed.
type ExerciseView struct {
	Key        string              `json:"key"`
	Kind       exercise.Kind       `json:"kind"`
	Prompt     string              `json:"prompt"`
	Question   string              `json:"question"`
	InputShape exercise.InputShape `json:"input_shape"`
	// Hint carries the source word for fill-in-the-blank questions.
	Hint string `json:"hint,omitempty"`
	// HasBlank is false when the sentence does not contain the target word,
	// so the question is shown without a gap.
	HasBlank      bool   `json:"has_blank"`
	Position      int    `json:"position"`
	DeckSize      int    `json:"deck_size"`
	Revealed      bool   `json:"revealed"`
	Answer        string `json:"answer,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	WasCorrect    *bool  `json:"was_correct,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
}

// SubmitResult reports whether a submission was scored.
type SubmitResult struct {
	Accepted      bool   `json:"accepted"`
	WasCorrect    *bool  `json:"was_correct,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Feedback      string `json:"feedback,omitempty"`
	// Reason explains a rejected submission.
	Reason string `json:"reason,omitempty"`
	// Rejection is the sentinel behind Reason.
	Rejection error `json:"-"`
}

// ScoreSummary is the running score.
type ScoreSummary struct {
	CorrectCount  int `json:"correct_count"`
	TotalAttempts int `json:"total_attempts"`
	// Percentage is rounded to the nearest integer and 0 before any attempt.
	Percentage int `json:"percentage"`
}

// Session tracks the cursor and score over a fixed deck.
type Session struct {
	id      uuid.UUID
	deck    *deck.Deck
	rng     *rand.Rand
	emitter events.EventEmitter
	logger  *slog.Logger

	cursor        int
	correctCount  int
	totalAttempts int
	phase         Phase
	lastCorrect   bool
	lastAnswer    string
	feedback      string
}

// New creates a session positioned at the first exercise of d.
//
// rng drives feedback selection; nil seeds a fresh generator. emitter may be
// nil, in which case no events are published.
func New(d *deck.Deck, rng *rand.Rand, emitter events.EventEmitter, log *slog.Logger) (*Session, error) {
	if d == nil {
		return nil, ErrNilDeck
	}
	if d.Len() == 0 {
		return nil, domain.NewEmptyError(errors.New("deck has no exercises"))
	}
	if rng == nil {
		rng = deck.NewRand(0)
	}
	if log == nil {
		log = slog.Default()
	}

	id := uuid.New()
	return &Session{
		id:      id,
		deck:    d,
		rng:     rng,
		emitter: emitter,
		logger: log.With(
			slog.String("component", "session"),
			slog.String("session_id", id.String())),
		phase: PhaseAnswering,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Deck returns the deck the session walks.
func (s *Session) Deck() *deck.Deck {
	return s.deck
}

// Cursor returns the current deck position.
func (s *Session) Cursor() int {
	return s.cursor
}

// Phase returns the phase of the current exercise.
func (s *Session) Phase() Phase {
	return s.phase
}

// Status reports whether exercises remain.
func (s *Session) Status() Status {
	if s.phase == PhaseFinished {
		return StatusFinished
	}
	return StatusInProgress
}

// CurrentExercise returns the view of the exercise under the cursor.
// Returns ErrSessionFinished once the deck is exhausted.
func (s *Session) CurrentExercise(ctx context.Context) (ExerciseView, error) {
	if s.phase == PhaseFinished {
		return ExerciseView{}, ErrSessionFinished
	}

	inst, ok := s.deck.At(s.cursor)
	if !ok {
		// unreachable while phase tracks the cursor
		return ExerciseView{}, ErrSessionFinished
	}

	view := ExerciseView{
		Key:        inst.Key(),
		Kind:       inst.Kind,
		Prompt:     inst.Kind.Prompt(),
		Question:   inst.Question(),
		InputShape: inst.Kind.InputShape(),
		Position:   s.cursor,
		DeckSize:   s.deck.Len(),
		Revealed:   s.phase == PhaseRevealed,
	}
	if inst.Kind == exercise.KindFillInBlank {
		view.Hint = inst.Entry.SourceWord
		view.HasBlank = exercise.HasBlank(inst.Kind, *inst.Entry)
	}
	if view.Revealed {
		correct := s.lastCorrect
		view.Answer = s.lastAnswer
		view.CorrectAnswer = inst.ExpectedAnswer()
		view.WasCorrect = &correct
		view.Feedback = s.feedback
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("serving exercise",
		slog.String("key", view.Key),
		slog.Bool("revealed", view.Revealed))

	return view, nil
}

// SubmitAnswer scores input against the current exercise.
//
// Blank input, a second submission for a revealed exercise, and submissions
// after the deck is exhausted are rejected without touching the score.
func (s *Session) SubmitAnswer(ctx context.Context, input string) SubmitResult {
	log := logger.FromContextOrDefault(ctx, s.logger)

	switch {
	case s.phase == PhaseFinished:
		return rejected(ErrSessionFinished)
	case s.phase == PhaseRevealed:
		log.Debug("ignoring submission for revealed exercise", slog.Int("cursor", s.cursor))
		return rejected(ErrAlreadyRevealed)
	case strings.TrimSpace(input) == "":
		log.Debug("ignoring empty submission", slog.Int("cursor", s.cursor))
		return rejected(domain.ErrEmptySubmission)
	}

	inst, _ := s.deck.At(s.cursor)
	correct := inst.Check(input)

	s.totalAttempts++
	if correct {
		s.correctCount++
	}
	s.phase = PhaseRevealed
	s.lastCorrect = correct
	s.lastAnswer = input
	s.feedback = pickFeedback(s.rng, correct)

	log.Debug("answer scored",
		slog.String("key", inst.Key()),
		slog.Bool("correct", correct),
		slog.Int("correct_count", s.correctCount),
		slog.Int("total_attempts", s.totalAttempts))

	s.emit(ctx, events.TypeAnswerSubmitted, map[string]interface{}{
		"position":       s.cursor,
		"kind":           inst.Kind,
		"correct":        correct,
		"correct_count":  s.correctCount,
		"total_attempts": s.totalAttempts,
	})

	return SubmitResult{
		Accepted:      true,
		WasCorrect:    &correct,
		CorrectAnswer: inst.ExpectedAnswer(),
		Feedback:      s.feedback,
	}
}

// Advance moves to the next exercise and clears the current outcome.
// Advancing past the last exercise finishes the session; advancing a
// finished session is a no-op.
func (s *Session) Advance(ctx context.Context) Status {
	if s.phase == PhaseFinished {
		return StatusFinished
	}

	skipped := s.phase == PhaseAnswering
	s.cursor++
	s.lastCorrect = false
	s.lastAnswer = ""
	s.feedback = ""

	if s.cursor >= s.deck.Len() {
		s.phase = PhaseFinished
		logger.FromContextOrDefault(ctx, s.logger).Info("session finished",
			slog.Int("correct_count", s.correctCount),
			slog.Int("total_attempts", s.totalAttempts))
		s.emit(ctx, events.TypeSessionFinished, s.ScoreSummary())
		return StatusFinished
	}

	s.phase = PhaseAnswering
	s.emit(ctx, events.TypeExerciseAdvanced, map[string]interface{}{
		"cursor":  s.cursor,
		"skipped": skipped,
	})
	return StatusInProgress
}

// ScoreSummary returns the running score.
func (s *Session) ScoreSummary() ScoreSummary {
	summary := ScoreSummary{
		CorrectCount:  s.correctCount,
		TotalAttempts: s.totalAttempts,
	}
	if s.totalAttempts > 0 {
		summary.Percentage = int(math.Round(float64(s.correctCount) / float64(s.totalAttempts) * 100))
	}
	return summary
}

// emit publishes an event. Handler failures are logged and never undo a
// transition.
func (s *Session) emit(ctx context.Context, eventType string, payload interface{}) {
	if s.emitter == nil {
		return
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewSessionEvent(eventType, s.id, payload)
	if err != nil {
		log.Error("failed to create session event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("session event handler failed",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType))
	}
}

func rejected(reason error) SubmitResult {
	return SubmitResult{
		Accepted:  false,
		Reason:    reason.Error(),
		Rejection: reason,
	}
}
