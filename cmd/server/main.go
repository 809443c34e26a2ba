// Package main implements the entry point for the vocab-drill server, which
// loads a vocabulary list, builds a shuffled exercise deck, and serves the
// drill session over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("seeded", cfg.Vocabulary.Seed != 0))

	return cfg, l, nil
}
