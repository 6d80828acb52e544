package middleware

import (
	"encoding/json"
	"net/http"

	"storefront-gateway/internal/session"
)

const msgLoginRequired = "로그인이 필요합니다."

// RequireAuth answers 401 with a login redirect hint unless the request's
// session carries a backend token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromContext(r.Context()).Authenticated() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":    "unauthenticated",
				"message":  msgLoginRequired,
				"redirect": "/login",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}
