package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CookieName   = "storefront_session"
	anonymousTTL = 30 * 24 * time.Hour
)

type AuthBackend interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResult, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResult, error)
	SocialCallback(ctx context.Context, provider, code string) (*backend.AuthResult, error)
	Logout(ctx context.Context, cred backend.Credentials) error
}

type Manager struct {
	store        Store
	auth         AuthBackend
	ttl          time.Duration
	secureCookie bool
	now          func() time.Time
}

func NewManager(store Store, auth AuthBackend, ttl time.Duration, secureCookie bool) *Manager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{
		store:        store,
		auth:         auth,
		ttl:          ttl,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// Hydrate builds the request's session: the stored session named by the
// cookie, else a bearer token session, else an anonymous one. It never
// fails; store errors degrade to anonymous.
func (m *Manager) Hydrate(ctx context.Context, r *http.Request) *Session {
	log := logger.FromCtx(ctx).With(zap.String("layer", "session"))

	id := cookieID(r)
	if id != "" {
		s, err := m.store.Get(ctx, id)
		switch {
		case err == nil && !s.Expired(m.now()):
			return s
		case err == nil:
			log.Debug("session expired")
			if derr := m.store.Delete(ctx, id); derr != nil {
				log.Warn("failed to delete expired session", zap.Error(derr))
			}
		case !errors.Is(err, ErrNotFound):
			log.Error("failed to load session", zap.Error(err))
		}
		return &Session{ID: id}
	}

	if token := bearerToken(r); token != "" {
		return &Session{
			ID:        hashID(token)[:32],
			Token:     token,
			ExpiresAt: m.expiry(token),
		}
	}

	return &Session{ID: uuid.NewString()}
}

func (m *Manager) Login(ctx context.Context, current *Session, req backend.LoginRequest) (*Session, error) {
	res, err := m.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.start(ctx, current, res)
}

func (m *Manager) Register(ctx context.Context, current *Session, req backend.RegisterRequest) (*Session, error) {
	res, err := m.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.start(ctx, current, res)
}

func (m *Manager) SocialLogin(ctx context.Context, current *Session, provider, code string) (*Session, error) {
	res, err := m.auth.SocialCallback(ctx, provider, code)
	if err != nil {
		return nil, err
	}
	return m.start(ctx, current, res)
}

// start persists a signed-in session under a fresh id so a pre-login id
// never carries the token.
func (m *Manager) start(ctx context.Context, current *Session, res *backend.AuthResult) (*Session, error) {
	user := res.User
	s := &Session{
		ID:        uuid.NewString(),
		Token:     res.Token,
		User:      &user,
		ExpiresAt: m.expiry(res.Token),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}

	if current != nil && current.ID != "" {
		if err := m.store.Delete(ctx, current.ID); err != nil {
			logger.FromCtx(ctx).Warn("failed to drop previous session", zap.Error(err))
		}
	}

	logger.FromCtx(ctx).Info("session started",
		zap.String("layer", "session"),
		zap.Int64("user_id", user.ID),
		zap.Time("expires_at", s.ExpiresAt),
	)
	return s, nil
}

// Logout tells the backend best-effort and always forgets the session.
func (m *Manager) Logout(ctx context.Context, s *Session) error {
	if s == nil {
		return nil
	}
	log := logger.FromCtx(ctx).With(zap.String("layer", "session"))

	if s.Authenticated() {
		if err := m.auth.Logout(ctx, s.Credentials()); err != nil {
			log.Warn("backend logout failed", zap.Error(err))
		}
	}
	if err := m.Forget(ctx, s); err != nil {
		return err
	}
	log.Info("session cleared")
	return nil
}

// Forget drops the stored session without telling the backend, for tokens
// the backend has already rejected.
func (m *Manager) Forget(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return nil
	}
	return m.store.Delete(ctx, s.ID)
}

// expiry reads exp from the backend token without verifying it; the backend
// verifies its own tokens. Tokens without exp get the configured TTL.
func (m *Manager) expiry(token string) time.Time {
	fallback := m.now().Add(m.ttl)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}

func (m *Manager) SetCookie(w http.ResponseWriter, s *Session) {
	expires := s.ExpiresAt
	if expires.IsZero() {
		expires = m.now().Add(anonymousTTL)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieID(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
