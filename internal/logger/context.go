package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	sessionIDKey ctxKey = "session_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithSessionID tags every log line of the request with a short session reference.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// FromCtx returns the logger with request_id and session_id added when present.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if sid, ok := ctx.Value(sessionIDKey).(string); ok && sid != "" {
		l = l.With(zap.String("session_id", sid))
	}
	return l
}
