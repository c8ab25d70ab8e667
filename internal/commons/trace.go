package commons

import (
	"context"

	"go.uber.org/zap"
)

const TraceHeader = "X-Trace-Id"

type traceKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

// TraceID returns the request trace id, or "" outside a request.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

// Logger scopes base to the request trace id when there is one.
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	if id := TraceID(ctx); id != "" {
		return base.With(zap.String("traceId", id))
	}
	return base
}
