package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	var reqLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		reqLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Trace(base)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/score", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, traceID, 32)
	require.NotNil(t, reqLogger)
	assert.Contains(t, buf.String(), `"msg":"request started"`)
	assert.Contains(t, buf.String(), traceID)
	assert.Contains(t, buf.String(), `"path":"/api/score"`)
}

func TestTraceAssignsDistinctIDs(t *testing.T) {
	seen := make(map[string]bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})
	handler := Trace(nil)(next)

	for i := 0; i < 10; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, seen, 10)
}
