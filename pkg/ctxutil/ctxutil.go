// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey       struct{}
	requestIDKey    struct{}
	studySessionKey struct{}
)

// WithUserID stores the authenticated user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the authenticated user. A nil UUID counts as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNilUUID(ctx, userIDKey{})
}

// WithRequestID stores the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request correlation ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithStudySessionID marks the context as working on one study session,
// so log lines emitted further down carry its ID.
func WithStudySessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, studySessionKey{}, id)
}

// StudySessionIDFromCtx returns the study session set by WithStudySessionID.
func StudySessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNilUUID(ctx, studySessionKey{})
}

func nonNilUUID(ctx context.Context, key any) (uuid.UUID, bool) {
	id, ok := ctx.Value(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
