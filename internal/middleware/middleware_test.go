package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/ctxkeys"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, error) {
	if sub, ok := s[token]; ok {
		return sub, nil
	}
	return "", errors.New("bad token")
}

func echoSubject(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(ctxkeys.Subject(r.Context())))
}

func TestRequireToken(t *testing.T) {
	h := RequireToken(stubVerifier{"good": "mobile"})(http.HandlerFunc(echoSubject))

	cases := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{name: "missing", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "header", header: "Bearer good", status: http.StatusOK, body: "mobile"},
		{name: "query", query: "?access_token=good", status: http.StatusOK, body: "mobile"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/state"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestRequireTokenDisabled(t *testing.T) {
	h := RequireToken(nil)(http.HandlerFunc(echoSubject))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, 2, time.Minute)
	now := time.Now()
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("a"))

	now = now.Add(5 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.requests)
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := RateLimit(NewRateLimiter(ctx, 1, time.Minute))(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send().Code)
	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::1]:8080"
	assert.Equal(t, "::1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}

func TestConfigAddsSanitized(t *testing.T) {
	var got *config.Config
	h := Config(&config.Config{AppName: "Momentum", JWTSecret: "s"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxkeys.Config(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if assert.NotNil(t, got) {
		assert.Equal(t, "Momentum", got.AppName)
		assert.Empty(t, got.JWTSecret)
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }),
		mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
