package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// dialectMap maps database drivers to goose dialects
var dialectMap = map[string]database.Dialect{
	DriverSQLite:   database.DialectSQLite3,
	DriverPostgres: database.DialectPostgres,
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, ok := dialectMap[driver]
	if !ok {
		return nil, fmt.Errorf("no migration dialect for driver %q", driver)
	}

	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to get migrations directory: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	slog.Info("migrations completed", "applied", len(results), "version", version)
	return nil
}

func MigrateDown(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	slog.Info("rolled back one migration", "version", result.Source.Version)
	return nil
}

type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

func Status(ctx context.Context, db *sql.DB, driver string) ([]MigrationStatus, error) {
	provider, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
