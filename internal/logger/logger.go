package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Init installs the global logger.
// Development: text on stdout at debug level.
// Production: JSON on stdout at info level.
// With a Sentry DSN, error records are also reported to Sentry.
func Init(isDev bool, sentryDSN string) {
	Log = New(os.Stdout, isDev, sentryDSN)
	slog.SetDefault(Log)
}

// New builds a logger writing to w, fanned out to Sentry when a DSN is given.
func New(w io.Writer, isDev bool, sentryDSN string) *slog.Logger {
	handlers := []slog.Handler{baseHandler(w, isDev)}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			Environment:      environment(isDev),
			TracesSampleRate: 0.2,
		})
		if err != nil {
			slog.New(handlers[0]).Warn("sentry disabled", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{
				Level:     slog.LevelError,
				AddSource: true,
			}.NewSentryHandler())
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func baseHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

func environment(isDev bool) string {
	if isDev {
		return "development"
	}
	return "production"
}

// Flush waits for buffered Sentry events before the process exits.
func Flush() {
	sentry.Flush(2 * time.Second)
}
