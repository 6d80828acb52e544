// Package session holds the explicit per-request session: who the visitor
// is and which backend token acts for them.
package session

import (
	"context"
	"time"

	"storefront-gateway/internal/backend"
)

// Session is created by Manager.Hydrate at the start of every request and
// travels in the request context.
type Session struct {
	ID        string
	Token     string
	User      *backend.User
	ExpiresAt time.Time
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Credentials is what the backend client needs to act for this visitor.
func (s *Session) Credentials() backend.Credentials {
	if s == nil {
		return backend.Credentials{}
	}
	return backend.Credentials{Token: s.Token, SessionID: s.ID}
}

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session, or nil outside the middleware.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
