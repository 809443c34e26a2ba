package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/redact"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/vocab"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	source       vocab.Source
	eventEmitter *events.InMemoryEventEmitter
	trainer      *service.Trainer
}

// newApplication wires the vocabulary source, event emitter, and trainer.
// It does not start loading; Run does.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	// A zero timeout means no limit beyond the load context.
	client := &http.Client{
		Timeout: time.Duration(cfg.Vocabulary.FetchTimeoutSeconds) * time.Second,
	}
	source, err := vocab.NewSource(cfg.Vocabulary.Source, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary source: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	app := &application{
		config:       cfg,
		logger:       logger,
		source:       source,
		eventEmitter: emitter,
		trainer:      service.NewTrainer(cfg.Vocabulary.Seed, emitter, logger),
	}

	logger.Info("Application initialized successfully",
		slog.String("source", redact.String(source.Location())))
	return app, nil
}

// startLoading loads the vocabulary in the background. The returned channel
// receives the load result once and is then closed.
func (app *application) startLoading(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := app.trainer.Load(ctx, app.source)
		if err != nil {
			app.logger.Error("vocabulary load failed; serving not-ready responses",
				slog.String("error", redact.Error(err)))
		}
		done <- err
	}()
	return done
}

// Run starts loading the vocabulary and serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	app.startLoading(ctx)

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
