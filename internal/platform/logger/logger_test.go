// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts the original default logger back after the test.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug level", "debug", slog.LevelDebug, true},
		{"info level", "info", slog.LevelInfo, true},
		{"warn level", "warn", slog.LevelWarn, true},
		{"error level", "error", slog.LevelError, true},
		{"case insensitive - DEBUG", "DEBUG", slog.LevelDebug, true},
		{"case insensitive - Info", " Info ", slog.LevelInfo, true},
		{"unknown level", "verbose", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestSetupWritesJSONAtConfiguredLevel(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn", Port: 8080}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("info test message")
	l.Warn("warn test message", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "info test message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))
	assert.Equal(t, "warn test message", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "value", entry["key"])

	// Setup installs the logger as the default
	slog.Error("via default")
	assert.Contains(t, buf.String(), "via default")
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "invalid_level", Port: 8080}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "invalid log level configured")
	assert.Contains(t, out, "invalid_level")

	buf.Reset()
	l.Debug("debug test message")
	l.Info("info test message")
	assert.NotContains(t, buf.String(), "debug test message")
	assert.Contains(t, buf.String(), "info test message")
}

func TestContextLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := context.Background()
	assert.Nil(t, logger.FromContext(ctx))
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(ctx, nil))

	ctx = logger.WithLogger(ctx, scoped)
	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
}
