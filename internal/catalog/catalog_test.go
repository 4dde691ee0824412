package catalog

import (
	"errors"
	"testing"

	"hoops-trivia/internal/domain"
)

func TestBuiltinCatalogLookups(t *testing.T) {
	c := Builtin()

	if got := len(c.AllTeams()); got != 20 {
		t.Fatalf("expected 20 teams, got %d", got)
	}
	if got := len(c.AllPlayers()); got != 31 {
		t.Fatalf("expected 31 players, got %d", got)
	}

	lakers, ok := c.TeamByID("lakers")
	if !ok {
		t.Fatalf("expected lakers to resolve")
	}
	if lakers.FullName != "Los Angeles Lakers" || lakers.Abbreviation != "LAL" {
		t.Fatalf("unexpected lakers record: %+v", lakers)
	}

	if _, ok := c.TeamByID("nonexistent"); ok {
		t.Fatalf("expected unknown team to be absent")
	}

	lebron, ok := c.PlayerByName("LeBron James")
	if !ok || lebron.JerseyNumber != 23 || lebron.TeamID != "lakers" {
		t.Fatalf("unexpected lebron record: %+v ok=%v", lebron, ok)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Builtin()
	teams := c.AllTeams()
	teams[0].Name = "Changed"
	if first := c.AllTeams()[0]; first.Name == "Changed" {
		t.Fatalf("catalog mutated through AllTeams result")
	}
}

func TestNewRejectsInvariantViolations(t *testing.T) {
	teams := []domain.Team{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	players := []domain.Player{
		{Name: "p1", TeamID: "a", JerseyNumber: 1},
		{Name: "p2", TeamID: "b", JerseyNumber: 2},
		{Name: "p3", TeamID: "c", JerseyNumber: 3},
		{Name: "p4", TeamID: "d", JerseyNumber: 4},
	}
	if _, err := New(teams, players); err != nil {
		t.Fatalf("expected minimal catalog valid, got %v", err)
	}

	cases := map[string]struct {
		teams   []domain.Team
		players []domain.Player
	}{
		"too few teams":     {teams: teams[:3], players: nil},
		"duplicate team id": {teams: append(append([]domain.Team(nil), teams...), domain.Team{ID: "a"}), players: players},
		"empty team id":     {teams: append(append([]domain.Team(nil), teams...), domain.Team{}), players: players},
		"unknown team ref":  {teams: teams, players: append(append([]domain.Player(nil), players...), domain.Player{Name: "p5", TeamID: "zz", JerseyNumber: 5})},
		"duplicate player":  {teams: teams, players: append(append([]domain.Player(nil), players...), domain.Player{Name: "p1", TeamID: "a", JerseyNumber: 9})},
		"negative jersey":   {teams: teams, players: append(append([]domain.Player(nil), players...), domain.Player{Name: "p5", TeamID: "a", JerseyNumber: -1})},
		"unnamed player":    {teams: teams, players: append(append([]domain.Player(nil), players...), domain.Player{TeamID: "a", JerseyNumber: 5})},
		"few jersey values": {teams: teams, players: players[:3]},
	}
	for name, tc := range cases {
		if _, err := New(tc.teams, tc.players); !errors.Is(err, domain.ErrInvalidCatalog) {
			t.Fatalf("%s: expected ErrInvalidCatalog, got %v", name, err)
		}
	}
}

func TestFromDataRoundTrip(t *testing.T) {
	c, err := FromData(Builtin().Data())
	if err != nil {
		t.Fatalf("from data: %v", err)
	}
	if _, ok := c.TeamByID("spurs"); !ok {
		t.Fatalf("expected spurs after rebuild")
	}
}
