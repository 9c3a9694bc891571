package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/momentum/internal/ctxkeys"
)

// TokenVerifier returns the subject of a valid bearer token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireToken rejects requests without a valid bearer token. A nil verifier
// disables auth, which is how development runs without JWT_SECRET.
func RequireToken(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if tokens == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			subject, err := tokens.Verify(raw)
			if err != nil {
				slog.Warn("rejected token", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxkeys.WithSubject(r.Context(), subject)))
		})
	}
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter since browsers cannot set headers on websockets.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}
