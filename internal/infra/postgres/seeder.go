package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/infra/postgres/migrations"
)

type teamRow struct {
	bun.BaseModel `bun:"table:teams"`

	ID           string `bun:"id,pk"`
	Ordinal      int    `bun:"ordinal"`
	Name         string `bun:"name"`
	City         string `bun:"city"`
	FullName     string `bun:"full_name"`
	Abbreviation string `bun:"abbreviation"`
	LogoURL      string `bun:"logo_url"`
	PrimaryColor string `bun:"primary_color"`
}

type playerRow struct {
	bun.BaseModel `bun:"table:players"`

	Name         string `bun:"name,pk"`
	Ordinal      int    `bun:"ordinal"`
	TeamID       string `bun:"team_id"`
	JerseyNumber int    `bun:"jersey_number"`
	Position     string `bun:"position"`
}

// OpenBun opens a bun handle over the pgdriver connector.
func OpenBun(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Migrate applies every pending catalog migration.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Seed upserts every team and player of c, keeping catalog order.
func Seed(ctx context.Context, db *bun.DB, c *catalog.Catalog) error {
	teams := make([]teamRow, 0, len(c.AllTeams()))
	for i, t := range c.AllTeams() {
		teams = append(teams, teamRow{
			ID:           t.ID,
			Ordinal:      i,
			Name:         t.Name,
			City:         t.City,
			FullName:     t.FullName,
			Abbreviation: t.Abbreviation,
			LogoURL:      t.LogoURL,
			PrimaryColor: t.PrimaryColor,
		})
	}
	players := make([]playerRow, 0, len(c.AllPlayers()))
	for i, p := range c.AllPlayers() {
		players = append(players, playerRow{
			Name:         p.Name,
			Ordinal:      i,
			TeamID:       p.TeamID,
			JerseyNumber: p.JerseyNumber,
			Position:     p.Position,
		})
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&teams).
			On("CONFLICT (id) DO UPDATE").
			Set("ordinal = EXCLUDED.ordinal").
			Set("name = EXCLUDED.name").
			Set("city = EXCLUDED.city").
			Set("full_name = EXCLUDED.full_name").
			Set("abbreviation = EXCLUDED.abbreviation").
			Set("logo_url = EXCLUDED.logo_url").
			Set("primary_color = EXCLUDED.primary_color").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert teams: %w", err)
		}

		_, err = tx.NewInsert().
			Model(&players).
			On("CONFLICT (name) DO UPDATE").
			Set("ordinal = EXCLUDED.ordinal").
			Set("team_id = EXCLUDED.team_id").
			Set("jersey_number = EXCLUDED.jersey_number").
			Set("position = EXCLUDED.position").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert players: %w", err)
		}
		return nil
	})
}
