package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed create_teams.sql
var createTeamsSQL string

//go:embed create_players.sql
var createPlayersSQL string

var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			if _, err := db.ExecContext(ctx, createTeamsSQL); err != nil {
				return err
			}
			_, err := db.ExecContext(ctx, createPlayersSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS players`); err != nil {
				return err
			}
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS teams`)
			return err
		},
	)
}
