package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nouran-alaa/moviehub/internal/auth"
)

type contextKey int

const claimsKey contextKey = iota

// requireAuth wraps a handler and rejects requests without a valid
// bearer token. The verified claims are attached to the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided")
			return
		}
		claims, err := s.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// requestClaims returns the token claims attached by requireAuth.
func requestClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey).(*auth.Claims)
	return claims
}
