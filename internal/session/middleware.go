package session

import (
	"net/http"

	"storefront-gateway/internal/logger"
)

// Middleware hydrates the session and issues the cookie to first-time
// visitors so their guest cart stays keyed across requests.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Hydrate(r.Context(), r)

		if cookieID(r) == "" && !s.Authenticated() {
			m.SetCookie(w, s)
		}

		ctx := WithSession(r.Context(), s)
		ctx = logger.WithSessionID(ctx, s.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
