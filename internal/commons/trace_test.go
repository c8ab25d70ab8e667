package commons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))

	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceID(ctx))
}

func TestLogger_AddsTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	Logger(WithTraceID(context.Background(), "abc"), base).Info("with trace")
	Logger(context.Background(), base).Info("without trace")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["traceId"])
	assert.NotContains(t, entries[1].ContextMap(), "traceId")
}
