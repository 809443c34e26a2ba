package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/phrazzld/vocab-drill/internal/deck"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/redact"
	"github.com/phrazzld/vocab-drill/internal/service/session"
	"github.com/phrazzld/vocab-drill/internal/vocab"
)

// State is the trainer lifecycle state.
type State string

// Possible trainer states
const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// TrainerStatus summarizes the trainer for status endpoints.
type TrainerStatus struct {
	State      State  `json:"state"`
	Source     string `json:"source,omitempty"`
	EntryCount int    `json:"entry_count"`
	DeckSize   int    `json:"deck_size"`
	Dropped    int    `json:"dropped_rows"`
	SessionID  string `json:"session_id,omitempty"`
	// Error is the load failure. Callers must redact it before exposing it.
	Error error `json:"-"`
}

// Trainer owns the loaded vocabulary and the active session.
type Trainer struct {
	mu      sync.Mutex
	state   State
	loadErr error
	started bool
	source  string
	report  *vocab.ParseReport
	session *session.Session

	rng     *rand.Rand
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTrainer creates a trainer in the loading state.
//
// seed fixes the shuffle order for reproducible decks; 0 picks a random seed.
// emitter may be nil.
func NewTrainer(seed uint64, emitter events.EventEmitter, log *slog.Logger) *Trainer {
	if log == nil {
		log = slog.Default()
	}
	return &Trainer{
		state:   StateLoading,
		rng:     deck.NewRand(seed),
		emitter: emitter,
		logger:  log.With(slog.String("component", "trainer")),
	}
}

// Load fetches and parses the vocabulary from src, builds the deck, and starts
// the first session. It runs once; a failure leaves the trainer failed with
// no retry.
func (t *Trainer) Load(ctx context.Context, src vocab.Source) error {
	log := logger.FromContextOrDefault(ctx, t.logger)

	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return ErrAlreadyLoaded
	}
	t.started = true
	t.source = src.Location()
	t.mu.Unlock()

	log.Info("loading vocabulary", slog.String("source", redact.String(src.Location())))

	// Fetch outside the lock so status requests stay responsive.
	entries, report, err := vocab.Load(ctx, src)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		return t.fail(log, err)
	}

	t.report = report
	if err := t.startSession(ctx, entries); err != nil {
		return t.fail(log, err)
	}
	t.state = StateReady

	log.Info("vocabulary loaded",
		slog.Int("rows_read", report.RowsRead),
		slog.Int("entries", report.Accepted),
		slog.Int("dropped_rows", report.Dropped()),
		slog.Int("deck_size", t.session.Deck().Len()))
	if report.Dropped() > 0 {
		log.Debug("dropped vocabulary rows", slog.Any("lines", report.DroppedLines))
	}
	return nil
}

// fail records a load failure. Caller holds t.mu.
func (t *Trainer) fail(log *slog.Logger, err error) error {
	t.state = StateFailed
	t.loadErr = err
	log.Error("failed to load vocabulary",
		slog.String("error", redact.Error(err)),
		slog.String("source", redact.String(t.source)))
	return err
}

// startSession shuffles a new deck over entries. Caller holds t.mu.
func (t *Trainer) startSession(ctx context.Context, entries []domain.VocabularyEntry) error {
	d, err := deck.Build(entries, t.rng)
	if err != nil {
		return err
	}
	s, err := session.New(d, t.rng, t.emitter, t.logger)
	if err != nil {
		return err
	}
	t.session = s

	logger.FromContextOrDefault(ctx, t.logger).Info("session started",
		slog.String("session_id", s.ID().String()),
		slog.Int("deck_size", d.Len()))
	return nil
}

// ready returns an error unless the trainer has an active session. Caller
// holds t.mu.
func (t *Trainer) ready() error {
	switch t.state {
	case StateReady:
		return nil
	case StateFailed:
		return fmt.Errorf("%w: %w", ErrNotReady, t.loadErr)
	default:
		return ErrNotReady
	}
}

// Status reports the lifecycle state and deck dimensions.
func (t *Trainer) Status() TrainerStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := TrainerStatus{
		State:  t.state,
		Source: t.source,
		Error:  t.loadErr,
	}
	if t.report != nil {
		status.Dropped = t.report.Dropped()
	}
	if t.session != nil {
		status.EntryCount = t.session.Deck().EntryCount()
		status.DeckSize = t.session.Deck().Len()
		status.SessionID = t.session.ID().String()
	}
	return status
}

// Reset starts a new session over the current deck's entries with a fresh
// shuffle.
func (t *Trainer) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ready(); err != nil {
		return err
	}
	return t.startSession(ctx, t.session.Deck().Entries())
}

// CurrentExercise returns the view of the current exercise.
func (t *Trainer) CurrentExercise(ctx context.Context) (session.ExerciseView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ready(); err != nil {
		return session.ExerciseView{}, err
	}
	return t.session.CurrentExercise(ctx)
}

// SubmitAnswer scores input against the current exercise.
func (t *Trainer) SubmitAnswer(ctx context.Context, input string) (session.SubmitResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ready(); err != nil {
		return session.SubmitResult{}, err
	}
	return t.session.SubmitAnswer(ctx, input), nil
}

// Advance moves the session to the next exercise.
func (t *Trainer) Advance(ctx context.Context) (session.Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ready(); err != nil {
		return "", err
	}
	return t.session.Advance(ctx), nil
}

// Score returns the running score of the active session.
func (t *Trainer) Score() (session.ScoreSummary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ready(); err != nil {
		return session.ScoreSummary{}, err
	}
	return t.session.ScoreSummary(), nil
}
