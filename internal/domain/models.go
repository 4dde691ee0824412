package domain

import "strconv"

// Team is an immutable catalog entry for a franchise.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logoUrl"`
	PrimaryColor string `json:"primaryColor"`
}

// Player is an immutable catalog entry. Name doubles as the identifier.
type Player struct {
	Name         string `json:"name"`
	TeamID       string `json:"teamId"`
	JerseyNumber int    `json:"jerseyNumber"`
	Position     string `json:"position"`
}

// GameKind names one of the mini-games.
type GameKind string

const (
	GameLogoMatch    GameKind = "logo-match"
	GameTeamGuess    GameKind = "team-guess"
	GamePlayerTeam   GameKind = "player-team"
	GameJerseyNumber GameKind = "jersey-match"
)

// GameKinds lists the mini-games in menu order.
var GameKinds = []GameKind{GameLogoMatch, GameTeamGuess, GamePlayerTeam, GameJerseyNumber}

// Valid reports whether k is one of the known mini-games.
func (k GameKind) Valid() bool {
	for _, known := range GameKinds {
		if k == known {
			return true
		}
	}
	return false
}

// GameInfo is the menu entry for a mini-game.
type GameInfo struct {
	Kind        GameKind `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
}

// Games describes the game-select menu.
var Games = []GameInfo{
	{Kind: GameLogoMatch, Name: "Logo Match", Description: "Guess the team from the logo!", Emoji: "🎯"},
	{Kind: GameTeamGuess, Name: "Team Guess", Description: "Find the right logo!", Emoji: "🔍"},
	{Kind: GamePlayerTeam, Name: "Player Teams", Description: "Which team do they play for?", Emoji: "⭐"},
	{Kind: GameJerseyNumber, Name: "Jersey Numbers", Description: "Match players to their numbers!", Emoji: "👕"},
}

// SubjectKind distinguishes team questions from player questions.
type SubjectKind string

const (
	SubjectTeam   SubjectKind = "team"
	SubjectPlayer SubjectKind = "player"
)

// Subject is the team or player a question is about.
type Subject struct {
	Kind   SubjectKind `json:"kind"`
	Team   *Team       `json:"team,omitempty"`
	Player *Player     `json:"player,omitempty"`
}

// SpokenName is what narration reads out when asked for a hint.
func (s Subject) SpokenName() string {
	switch {
	case s.Kind == SubjectTeam && s.Team != nil:
		return s.Team.FullName
	case s.Kind == SubjectPlayer && s.Player != nil:
		return s.Player.Name
	}
	return ""
}

// Candidate is one displayed answer option. Value is the comparison key.
type Candidate struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	LogoURL string `json:"logoUrl,omitempty"`
	Color   string `json:"color,omitempty"`
}

// TeamCandidate builds the option shown for a team.
func TeamCandidate(t Team) Candidate {
	return Candidate{Value: t.ID, Label: t.Name, LogoURL: t.LogoURL, Color: t.PrimaryColor}
}

// JerseyCandidate builds the option shown for a jersey number.
func JerseyCandidate(number int) Candidate {
	v := strconv.Itoa(number)
	return Candidate{Value: v, Label: "#" + v}
}

// CandidateCount is the number of options every question carries.
const CandidateCount = 4

// Question is generated per round and never persisted. Subject and Answer
// stay server-side; Image is what the player looks at, if anything.
type Question struct {
	ID         string      `json:"id"`
	Game       GameKind    `json:"game"`
	Prompt     string      `json:"prompt"`
	Narration  string      `json:"-"`
	Image      string      `json:"image,omitempty"`
	Subject    Subject     `json:"-"`
	Candidates []Candidate `json:"candidates"`
	Answer     string      `json:"-"`
}

// Validate checks the candidate list: exactly four distinct values with the answer present once.
func (q Question) Validate() error {
	if len(q.Candidates) != CandidateCount {
		return ErrMalformedQuestion
	}
	seen := make(map[string]struct{}, len(q.Candidates))
	answers := 0
	for _, c := range q.Candidates {
		if _, dup := seen[c.Value]; dup {
			return ErrMalformedQuestion
		}
		seen[c.Value] = struct{}{}
		if c.Value == q.Answer {
			answers++
		}
	}
	if answers != 1 {
		return ErrMalformedQuestion
	}
	return nil
}

// RoundState is the lifecycle position of the current question.
type RoundState string

const (
	RoundAwaitingAnswer RoundState = "awaiting"
	RoundResolved       RoundState = "resolved"
)

// Verdict is empty until the round resolves.
type Verdict string

const (
	VerdictNone      Verdict = ""
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// RoundSnapshot is the presentation view of a game session.
type RoundSnapshot struct {
	SessionID string     `json:"sessionId"`
	Game      GameKind   `json:"game"`
	Round     int        `json:"round"`
	State     RoundState `json:"state"`
	Question  Question   `json:"question"`
	Selected  string     `json:"selected,omitempty"`
	Verdict   Verdict    `json:"verdict,omitempty"`
	Correct   string     `json:"correct,omitempty"` // revealed once resolved
	Score     int        `json:"score"`
	Streak    int        `json:"streak"`
}
