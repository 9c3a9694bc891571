package middleware

import (
	"net/http"

	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// Secrets like JWT_SECRET and S3 credentials are excluded.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
