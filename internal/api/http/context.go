package http

import (
	"context"

	"gkbc-backend/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession returns a context carrying the authenticated session.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext extracts the authenticated session set by the auth
// middleware. The second return is false on unauthenticated requests.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(domain.Session)
	return s, ok
}
