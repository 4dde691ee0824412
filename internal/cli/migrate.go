package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hoops-trivia/internal/config"
	pgcatalog "hoops-trivia/internal/infra/postgres"
	"hoops-trivia/internal/logging"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return runMigrations(cmd.Context(), cfg, newLogger(cfg))
		},
	}
}

func runMigrations(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	db := pgcatalog.OpenBun(cfg.Postgres.URL)
	defer db.Close()

	if err := pgcatalog.Migrate(ctx, db); err != nil {
		return err
	}
	logging.Info(logger, "migrations applied")
	return nil
}
