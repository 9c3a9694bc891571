package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/templui/momentum/internal/app"
	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/logger"
	"github.com/templui/momentum/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer logger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		logger.Flush()
		panic(err)
	}

	persistCtx, stopPersist := context.WithCancel(context.Background())
	go app.Run(persistCtx)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	// Writes the last pending snapshot before the database closes
	stopPersist()
	<-app.Persister.Done()

	err = app.Close()
	if err != nil {
		slog.Error("failed to close app", "error", err)
	}
}
