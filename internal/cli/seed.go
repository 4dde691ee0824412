package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/config"
	pgcatalog "hoops-trivia/internal/infra/postgres"
	"hoops-trivia/internal/logging"
)

// NewSeedCmd loads the built-in catalog into Postgres.
func NewSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and upsert the built-in team and player catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			cfg.Postgres.Seed = true
			return prepareDatabase(cmd.Context(), cfg, newLogger(cfg))
		},
	}
}

// prepareDatabase migrates and, when configured, seeds the catalog tables.
func prepareDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := runMigrations(ctx, cfg, logger); err != nil {
		return err
	}
	if !cfg.Postgres.Seed {
		return nil
	}
	db := pgcatalog.OpenBun(cfg.Postgres.URL)
	defer db.Close()

	c := catalog.Builtin()
	if err := pgcatalog.Seed(ctx, db, c); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logging.Info(logger, "catalog seeded", "teams", len(c.AllTeams()), "players", len(c.AllPlayers()))
	return nil
}
