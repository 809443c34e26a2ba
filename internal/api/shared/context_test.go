package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)
	assert.NotContains(t, traceID, "-")

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceIDWithoutTrace(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := context.WithValue(context.Background(), TraceIDKey, 42)
	assert.Empty(t, GetTraceID(ctx))
}
