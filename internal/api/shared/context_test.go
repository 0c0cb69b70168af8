package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32)

	// The original context is untouched.
	assert.Empty(t, GetTraceID(ctx))
}

func TestTraceIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		traceID := GetTraceID(SetTraceID(context.Background()))
		assert.False(t, seen[traceID], "trace ID %q generated twice", traceID)
		seen[traceID] = true
	}
}

func TestFallbackTraceID(t *testing.T) {
	traceID := fallbackTraceID()
	assert.Len(t, traceID, 32)
	assert.NotEqual(t, fallbackTraceID(), "")
}
