package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func Init(driver, connection string) (*sqlx.DB, error) {
	if driver == DriverSQLite {
		if err := ensureDataDir(connection); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// one writer at a time, sqlite locks the whole file anyway
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// ensureDataDir creates the directory of a file-backed sqlite database.
func ensureDataDir(connection string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(connection, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
