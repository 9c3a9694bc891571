package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/templui/momentum/internal/config"
	"github.com/templui/momentum/internal/db"
	"github.com/templui/momentum/internal/repository"
	"github.com/templui/momentum/internal/service"
	"github.com/templui/momentum/internal/store"
)

func SeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo checklist and feeds to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, database *sqlx.DB) error {
				if err := db.RunMigrations(ctx, database.DB, cfg.DBDriver); err != nil {
					return err
				}
				return seed(ctx, repository.NewStateRepository(database), force)
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing state")
	return cmd
}

func seed(ctx context.Context, repo repository.StateRepository, force bool) error {
	_, err := repo.Load(ctx)
	switch {
	case err == nil && !force:
		return fmt.Errorf("state already exists, use --force to overwrite")
	case err != nil && !errors.Is(err, repository.ErrSnapshotNotFound):
		return err
	}

	demo := store.Demo()
	if err := repo.Save(ctx, service.SnapshotOf(demo)); err != nil {
		return err
	}
	fmt.Printf("Seeded %d actions and %d posts\n", len(demo.Actions), len(demo.CircleFeed)+len(demo.FollowFeed))
	return nil
}
