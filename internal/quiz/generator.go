// Package quiz generates four-option questions for each mini-game.
package quiz

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/random"
)

// Catalog is the read-only dataset questions are drawn from.
type Catalog interface {
	AllTeams() []domain.Team
	AllPlayers() []domain.Player
	TeamByID(id string) (domain.Team, bool)
}

// Generator produces a fresh question for one mini-game.
type Generator interface {
	Kind() domain.GameKind
	Generate() (domain.Question, error)
}

const distractorCount = domain.CandidateCount - 1

// New returns the generator for kind.
func New(kind domain.GameKind, cat Catalog, src random.Source) (Generator, error) {
	if src == nil {
		src = random.Default
	}
	switch kind {
	case domain.GameLogoMatch:
		return NewLogoMatch(cat, src), nil
	case domain.GameTeamGuess:
		return NewTeamGuess(cat, src), nil
	case domain.GamePlayerTeam:
		return NewPlayerTeam(cat, src), nil
	case domain.GameJerseyNumber:
		return NewJerseyNumber(cat, src), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGame, kind)
}

func candidateValue(c domain.Candidate) string { return c.Value }

// assemble draws the distractors, shuffles them in with the correct
// candidate and checks the result before handing it out.
func assemble(src random.Source, q domain.Question, correct domain.Candidate, pool []domain.Candidate) (domain.Question, error) {
	distractors, err := random.PickDistinctOthers(src, pool, correct, distractorCount, candidateValue)
	if err != nil {
		return domain.Question{}, fmt.Errorf("%s distractors: %w", q.Game, err)
	}

	q.ID = uuid.NewString()
	q.Answer = correct.Value
	q.Candidates = random.Shuffle(src, append([]domain.Candidate{correct}, distractors...))
	if err := q.Validate(); err != nil {
		return domain.Question{}, fmt.Errorf("%s question: %w", q.Game, err)
	}
	return q, nil
}

func teamPool(cat Catalog) []domain.Candidate {
	teams := cat.AllTeams()
	pool := make([]domain.Candidate, 0, len(teams))
	for _, t := range teams {
		pool = append(pool, domain.TeamCandidate(t))
	}
	return pool
}

func jerseyPool(cat Catalog) []domain.Candidate {
	players := cat.AllPlayers()
	pool := make([]domain.Candidate, 0, len(players))
	for _, p := range players {
		pool = append(pool, domain.JerseyCandidate(p.JerseyNumber))
	}
	return pool
}

// teamQuestions covers both team-subject games; they only differ in wording.
type teamQuestions struct {
	kind      domain.GameKind
	cat       Catalog
	src       random.Source
	prompt    func(domain.Team) string
	narration func(domain.Team) string
	showLogo  bool
}

func (g *teamQuestions) Kind() domain.GameKind { return g.kind }

func (g *teamQuestions) Generate() (domain.Question, error) {
	team, err := random.PickOne(g.src, g.cat.AllTeams())
	if err != nil {
		return domain.Question{}, fmt.Errorf("%s subject: %w", g.kind, err)
	}
	return g.QuestionFor(team)
}

// QuestionFor builds a question about a fixed team.
func (g *teamQuestions) QuestionFor(team domain.Team) (domain.Question, error) {
	q := domain.Question{
		Game:      g.kind,
		Prompt:    g.prompt(team),
		Narration: g.narration(team),
		Subject:   domain.Subject{Kind: domain.SubjectTeam, Team: &team},
	}
	correct, pool := domain.TeamCandidate(team), teamPool(g.cat)
	if g.showLogo {
		q.Image = team.LogoURL
		// the logo is the question; a logo on the choices would give it away
		correct.LogoURL = ""
		for i := range pool {
			pool[i].LogoURL = ""
		}
	}
	return assemble(g.src, q, correct, pool)
}

// LogoMatch shows a logo and asks for the team name.
type LogoMatch struct{ teamQuestions }

func NewLogoMatch(cat Catalog, src random.Source) *LogoMatch {
	return &LogoMatch{teamQuestions{
		kind:      domain.GameLogoMatch,
		cat:       cat,
		src:       src,
		prompt:    func(domain.Team) string { return "Which team is this?" },
		narration: func(domain.Team) string { return "" },
		showLogo:  true,
	}}
}

// TeamGuess names a team and asks for its logo.
type TeamGuess struct{ teamQuestions }

func NewTeamGuess(cat Catalog, src random.Source) *TeamGuess {
	find := func(t domain.Team) string { return "Find the " + t.Name + " logo" }
	return &TeamGuess{teamQuestions{
		kind:      domain.GameTeamGuess,
		cat:       cat,
		src:       src,
		prompt:    find,
		narration: find,
	}}
}

// PlayerTeam asks which team a player plays for.
type PlayerTeam struct {
	cat Catalog
	src random.Source
}

func NewPlayerTeam(cat Catalog, src random.Source) *PlayerTeam {
	return &PlayerTeam{cat: cat, src: src}
}

func (g *PlayerTeam) Kind() domain.GameKind { return domain.GamePlayerTeam }

func (g *PlayerTeam) Generate() (domain.Question, error) {
	player, err := random.PickOne(g.src, g.cat.AllPlayers())
	if err != nil {
		return domain.Question{}, fmt.Errorf("%s subject: %w", g.Kind(), err)
	}
	return g.QuestionFor(player)
}

func (g *PlayerTeam) QuestionFor(player domain.Player) (domain.Question, error) {
	team, ok := g.cat.TeamByID(player.TeamID)
	if !ok {
		return domain.Question{}, fmt.Errorf("%w: %q for player %q", domain.ErrTeamNotFound, player.TeamID, player.Name)
	}
	text := "Which team does " + player.Name + " play for?"
	q := domain.Question{
		Game:      domain.GamePlayerTeam,
		Prompt:    text,
		Narration: text,
		Subject:   domain.Subject{Kind: domain.SubjectPlayer, Player: &player},
	}
	return assemble(g.src, q, domain.TeamCandidate(team), teamPool(g.cat))
}

// JerseyNumber asks for a player's jersey number. Distractors are distinct
// number values, so two players sharing a number never show up twice.
type JerseyNumber struct {
	cat Catalog
	src random.Source
}

func NewJerseyNumber(cat Catalog, src random.Source) *JerseyNumber {
	return &JerseyNumber{cat: cat, src: src}
}

func (g *JerseyNumber) Kind() domain.GameKind { return domain.GameJerseyNumber }

func (g *JerseyNumber) Generate() (domain.Question, error) {
	player, err := random.PickOne(g.src, g.cat.AllPlayers())
	if err != nil {
		return domain.Question{}, fmt.Errorf("%s subject: %w", g.Kind(), err)
	}
	return g.QuestionFor(player)
}

func (g *JerseyNumber) QuestionFor(player domain.Player) (domain.Question, error) {
	text := "What is " + player.Name + "'s jersey number?"
	q := domain.Question{
		Game:      domain.GameJerseyNumber,
		Prompt:    text,
		Narration: text,
		Subject:   domain.Subject{Kind: domain.SubjectPlayer, Player: &player},
	}
	return assemble(g.src, q, domain.JerseyCandidate(player.JerseyNumber), jerseyPool(g.cat))
}

// AnswerFor derives the correct candidate value for a subject in game kind.
func AnswerFor(kind domain.GameKind, subject domain.Subject) (string, bool) {
	switch kind {
	case domain.GameLogoMatch, domain.GameTeamGuess:
		if subject.Team != nil {
			return subject.Team.ID, true
		}
	case domain.GamePlayerTeam:
		if subject.Player != nil {
			return subject.Player.TeamID, true
		}
	case domain.GameJerseyNumber:
		if subject.Player != nil {
			return strconv.Itoa(subject.Player.JerseyNumber), true
		}
	}
	return "", false
}
