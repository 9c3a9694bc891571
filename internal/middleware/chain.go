package middleware

import (
	"encoding/json"
	"net/http"
)

// Chain applies multiple middleware in order (first to last)
//
// Example:
//
//	handler := Chain(mux,
//	    RequestLogging,      // Executes first
//	    Config(cfg),         // Executes second
//	    RequireToken(tokens) // Executes third
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	// Apply middleware in reverse order so they execute in the order provided
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
