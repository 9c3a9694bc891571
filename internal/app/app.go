package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/db"
	"github.com/templui/momentum/internal/metrics"
	"github.com/templui/momentum/internal/middleware"
	"github.com/templui/momentum/internal/repository"
	"github.com/templui/momentum/internal/service"
	"github.com/templui/momentum/internal/storage"
	"github.com/templui/momentum/internal/store"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	Store          *store.Store
	Persister      *service.Persister
	PostLimiter    *middleware.RateLimiter
	TokenService   *service.TokenService
	GoalService    *service.GoalService
	ActionService  *service.ActionService
	FeedService    *service.FeedService
	ShareService   *service.ShareService
	SessionService *service.SessionService
	SetupService   *service.SetupService

	detach func()
}

// New wires the application. ctx bounds background helpers such as the rate
// limiter cleanup; the persister is started separately by Run.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	stateRepository := repository.NewStateRepository(database)

	// Store
	st := store.New(store.Initial(), store.Options{OnMutation: metrics.RecordMutation})
	persister := service.NewPersister(stateRepository, service.PersisterOptions{
		Debounce: cfg.PersistDebounce,
		OnSave:   metrics.RecordPersist,
	})
	detach := persister.Attach(st)

	err = service.Restore(ctx, stateRepository, st, cfg.SeedDemo)
	if err != nil {
		detach()
		database.Close()
		return nil, err
	}

	// Storage
	mediaStorage, err := storage.New(ctx, cfg)
	if err != nil {
		detach()
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Services
	var tokenService *service.TokenService
	if cfg.AuthEnabled() {
		tokenService = service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry, cfg.AppName)
	} else {
		slog.Warn("API auth disabled", "hint", "set JWT_SECRET to require bearer tokens")
	}
	feedService := service.NewFeedService(st, cfg.DefaultUser)

	return &App{
		Cfg:            cfg,
		DB:             database,
		Store:          st,
		Persister:      persister,
		PostLimiter:    middleware.NewRateLimiter(ctx, cfg.PostRateLimit, cfg.PostRateWindow),
		TokenService:   tokenService,
		GoalService:    service.NewGoalService(st),
		ActionService:  service.NewActionService(st),
		FeedService:    feedService,
		ShareService:   service.NewShareService(st, feedService, mediaStorage, cfg.MediaMaxBytes),
		SessionService: service.NewSessionService(st),
		SetupService:   service.NewSetupService(st, cfg.DefaultUser),
		detach:         detach,
	}, nil
}

// Run persists store changes until ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Persister.Run(ctx)
}

// Close stops listening for changes and closes the database. Call it after
// Run has returned so the final flush is written.
func (a *App) Close() error {
	if a.detach != nil {
		a.detach()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
