package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/domain"
)

// CatalogLoader reads teams and players from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	teams, err := l.loadTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	players, err := l.loadPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return catalog.New(teams, players)
}

func (l *CatalogLoader) loadTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, name, city, full_name, abbreviation, logo_url, primary_color FROM teams ORDER BY ordinal, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.FullName, &t.Abbreviation, &t.LogoURL, &t.PrimaryColor); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (l *CatalogLoader) loadPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := l.pool.Query(ctx, `SELECT name, team_id, jersey_number, position FROM players ORDER BY ordinal, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.Name, &p.TeamID, &p.JerseyNumber, &p.Position); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
