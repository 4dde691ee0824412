// Package catalog holds the immutable team and player dataset questions are generated from.
package catalog

import (
	"fmt"

	"hoops-trivia/internal/domain"
)

// MinTeams and MinJerseyNumbers keep every generator able to draw three distractors.
const (
	MinTeams         = domain.CandidateCount
	MinJerseyNumbers = domain.CandidateCount
)

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	teams     []domain.Team
	players   []domain.Player
	teamIndex map[string]int
	byName    map[string]int
}

// Data is the serializable form of a catalog, used by caches and loaders.
type Data struct {
	Teams   []domain.Team   `json:"teams"`
	Players []domain.Player `json:"players"`
}

// New validates the dataset and returns a catalog over private copies of it.
func New(teams []domain.Team, players []domain.Player) (*Catalog, error) {
	c := &Catalog{
		teams:     append([]domain.Team(nil), teams...),
		players:   append([]domain.Player(nil), players...),
		teamIndex: make(map[string]int, len(teams)),
		byName:    make(map[string]int, len(players)),
	}

	if len(c.teams) < MinTeams {
		return nil, fmt.Errorf("%w: need at least %d teams, have %d", domain.ErrInvalidCatalog, MinTeams, len(c.teams))
	}
	for i, t := range c.teams {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: team at index %d has no id", domain.ErrInvalidCatalog, i)
		}
		if _, dup := c.teamIndex[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate team id %q", domain.ErrInvalidCatalog, t.ID)
		}
		c.teamIndex[t.ID] = i
	}

	numbers := make(map[int]struct{})
	for i, p := range c.players {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: player at index %d has no name", domain.ErrInvalidCatalog, i)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate player %q", domain.ErrInvalidCatalog, p.Name)
		}
		if _, ok := c.teamIndex[p.TeamID]; !ok {
			return nil, fmt.Errorf("%w: player %q references unknown team %q", domain.ErrInvalidCatalog, p.Name, p.TeamID)
		}
		if p.JerseyNumber < 0 {
			return nil, fmt.Errorf("%w: player %q has negative jersey number", domain.ErrInvalidCatalog, p.Name)
		}
		c.byName[p.Name] = i
		numbers[p.JerseyNumber] = struct{}{}
	}
	if len(numbers) < MinJerseyNumbers {
		return nil, fmt.Errorf("%w: need at least %d distinct jersey numbers, have %d", domain.ErrInvalidCatalog, MinJerseyNumbers, len(numbers))
	}

	return c, nil
}

// FromData rebuilds a validated catalog from its serialized form.
func FromData(d Data) (*Catalog, error) {
	return New(d.Teams, d.Players)
}

// Builtin returns the bundled NBA dataset.
func Builtin() *Catalog {
	c, err := New(builtinTeams, builtinPlayers)
	if err != nil {
		panic(err)
	}
	return c
}

// AllTeams returns the teams in catalog order.
func (c *Catalog) AllTeams() []domain.Team {
	return append([]domain.Team(nil), c.teams...)
}

// AllPlayers returns the players in catalog order.
func (c *Catalog) AllPlayers() []domain.Player {
	return append([]domain.Player(nil), c.players...)
}

// TeamByID reports false for an unknown id.
func (c *Catalog) TeamByID(id string) (domain.Team, bool) {
	i, ok := c.teamIndex[id]
	if !ok {
		return domain.Team{}, false
	}
	return c.teams[i], true
}

// PlayerByName looks a player up by exact name.
func (c *Catalog) PlayerByName(name string) (domain.Player, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Player{}, false
	}
	return c.players[i], true
}

// Data exports a copy suitable for JSON encoding.
func (c *Catalog) Data() Data {
	return Data{Teams: c.AllTeams(), Players: c.AllPlayers()}
}
