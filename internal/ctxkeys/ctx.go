package ctxkeys

import (
	"context"

	"github.com/templui/momentum/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	SubjectKey contextKey = "subject"
	ConfigKey  contextKey = "config"
)

// Subject is the authenticated token subject, empty when auth is off.
func Subject(ctx context.Context) string {
	sub, _ := ctx.Value(SubjectKey).(string)
	return sub
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
