package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/templui/momentum/internal/ctxkeys"
)

// RateLimiter is a sliding-window counter per client key
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int           // Max requests allowed
	window   time.Duration // Time window for rate limiting
	now      func() time.Time
}

// NewRateLimiter creates a limiter whose cleanup loop stops with ctx.
func NewRateLimiter(ctx context.Context, limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}

	go rl.cleanupLoop(ctx)

	return rl
}

// Allow records a request for key and reports whether it is within the limit.
// A non-positive limit allows everything.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := recent(rl.requests[key], now.Add(-rl.window))

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

func recent(times []time.Time, cutoff time.Time) []time.Time {
	out := times[:0:0]
	for _, t := range times {
		if t.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

// cleanup removes keys with no requests in the last two windows
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window * 2)
	for key, times := range rl.requests {
		if len(recent(times, cutoff)) == 0 {
			delete(rl.requests, key)
		}
	}
}

// RateLimit limits write endpoints per token subject, or per client IP when
// auth is off.
func RateLimit(limiter *RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := ctxkeys.Subject(r.Context())
			if key == "" {
				key = clientIP(r)
			}

			if !limiter.Allow(key) {
				slog.Warn("rate limit exceeded",
					"key", key,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}

			next(w, r)
		}
	}
}

// clientIP extracts real client IP from request
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
