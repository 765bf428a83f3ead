// ABOUTME: Session token authentication gate for protected routes
// ABOUTME: Verifies the BFF token and exposes claims (incl. upstream credential) to handlers

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fmartineau/retraite-mobile-bff/token"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const claimsKey contextKey = "sessionClaims"

// Auth returns middleware that rejects requests without a valid session
// token. A missing Authorization header and a failed verification produce
// distinct error kinds but the same 401 status; the gate never tells the
// caller why verification failed.
//
// On success the decoded claims are stored in the request context. This is
// the only way handlers obtain the upstream credential.
func Auth(codec *token.Codec) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				slog.Debug("Auth rejected: no bearer token", "path", r.URL.Path)
				writeJSONError(w, "missing_token", "Token BFF manquant.", http.StatusUnauthorized)
				return
			}

			claims, err := codec.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				slog.Debug("Auth rejected: invalid token", "path", r.URL.Path)
				writeJSONError(w, "invalid_token", "Token BFF invalide ou expire.", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetClaims retrieves the session claims stored by Auth.
// Returns nil on routes that did not pass through the gate.
func GetClaims(r *http.Request) *token.Claims {
	claims, ok := r.Context().Value(claimsKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
