package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/db"
)

func openDB() (*config.Config, *sqlx.DB, error) {
	cfg := config.Load()
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, database *sqlx.DB) error {
				return db.RunMigrations(ctx, database.DB, cfg.DBDriver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, database *sqlx.DB) error {
				return db.MigrateDown(ctx, database.DB, cfg.DBDriver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, database *sqlx.DB) error {
				statuses, err := db.Status(ctx, database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tAPPLIED\tFILE")
				for _, s := range statuses {
					fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
				}
				return w.Flush()
			})
		},
	})

	return cmd
}

func withDB(ctx context.Context, fn func(context.Context, *config.Config, *sqlx.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, database, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close(database)
	return fn(ctx, cfg, database)
}
