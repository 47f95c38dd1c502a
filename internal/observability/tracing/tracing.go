package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type traceIDKey struct{}

// InjectTraceID attaches a fresh traceId to both the context logger and the
// context itself, so request logs and journal entries correlate.
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()
	logger := log.With().Str("traceId", id).Logger()
	ctx = context.WithValue(ctx, traceIDKey{}, id)

	return logger.WithContext(ctx)
}

// TraceID returns the traceId attached by InjectTraceID, or "" when absent.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}

	return ""
}
