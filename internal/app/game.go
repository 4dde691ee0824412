package app

import (
	"context"
	"fmt"

	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/metrics"
	"hoops-trivia/internal/narration"
	"hoops-trivia/internal/quiz"
)

// celebrationEvery is the streak interval that earns a celebration.
const celebrationEvery = 5

// Round tracks one question from generation to resolution.
type Round struct {
	question domain.Question
	state    domain.RoundState
	selected string
	verdict  domain.Verdict
}

func newRound(q domain.Question) Round {
	return Round{question: q, state: domain.RoundAwaitingAnswer}
}

// resolve records the first answer only; later calls report false.
func (r *Round) resolve(value string) (domain.Verdict, bool) {
	if r.state != domain.RoundAwaitingAnswer {
		return r.verdict, false
	}
	r.selected = value
	r.verdict = domain.VerdictIncorrect
	if value == r.question.Answer {
		r.verdict = domain.VerdictCorrect
	}
	r.state = domain.RoundResolved
	return r.verdict, true
}

// Outcome is the result of a submission.
type Outcome struct {
	Applied   bool           `json:"applied"`
	Verdict   domain.Verdict `json:"verdict"`
	Score     int            `json:"score"`
	Streak    int            `json:"streak"`
	Celebrate bool           `json:"celebrate"`
}

// Game is the answer state machine for one mini-game, independent of which
// generator feeds it. It is not safe for concurrent use; Session serializes it.
type Game struct {
	gen      quiz.Generator
	narrator narration.Narrator
	phrases  *narration.Phrasebook
	metrics  *metrics.Recorder

	round  Round
	seq    int
	score  int
	streak int
}

// NewGame generates the first question and announces it.
func NewGame(ctx context.Context, gen quiz.Generator, narrator narration.Narrator, phrases *narration.Phrasebook, rec *metrics.Recorder) (*Game, error) {
	if narrator == nil {
		narrator = narration.Nop{}
	}
	if phrases == nil {
		phrases = narration.NewPhrasebook("", nil)
	}
	g := &Game{gen: gen, narrator: narrator, phrases: phrases, metrics: rec}
	if err := g.next(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Kind() domain.GameKind { return g.gen.Kind() }

// State reports where the current round is.
func (g *Game) State() domain.RoundState { return g.round.state }

// Seq numbers rounds from 1 so stale timers can tell they are stale.
func (g *Game) Seq() int { return g.seq }

// Submit resolves the current round. Once resolved, further submissions are ignored.
func (g *Game) Submit(ctx context.Context, value string) Outcome {
	verdict, applied := g.round.resolve(value)
	if !applied {
		return Outcome{Verdict: verdict, Score: g.score, Streak: g.streak}
	}

	out := Outcome{Applied: true, Verdict: verdict}
	if verdict == domain.VerdictCorrect {
		g.score++
		g.streak++
		g.narrator.Speak(ctx, g.phrases.Correct())
		if g.streak%celebrationEvery == 0 {
			out.Celebrate = true
			g.narrator.Speak(ctx, g.phrases.Celebration())
			g.metrics.RecordCelebration(string(g.Kind()))
		}
	} else {
		g.streak = 0
		g.narrator.Speak(ctx, g.phrases.Incorrect())
	}
	g.metrics.RecordAnswer(string(g.Kind()), string(verdict))

	out.Score = g.score
	out.Streak = g.streak
	return out
}

// Advance replaces a resolved round with a fresh question.
func (g *Game) Advance(ctx context.Context) error {
	if g.round.state != domain.RoundResolved {
		return domain.ErrRoundNotResolved
	}
	return g.next(ctx)
}

// Hint speaks the subject's name without touching round state.
func (g *Game) Hint(ctx context.Context) {
	g.narrator.Speak(ctx, g.phrases.Hint(g.round.question.Subject.SpokenName()))
}

func (g *Game) next(ctx context.Context) error {
	q, err := g.gen.Generate()
	if err != nil {
		return fmt.Errorf("generate %s question: %w", g.gen.Kind(), err)
	}
	g.round = newRound(q)
	g.seq++
	g.metrics.RecordQuestion(string(g.Kind()))
	if q.Narration != "" {
		g.narrator.Speak(ctx, g.phrases.Prompt(q.Narration))
	}
	return nil
}

// Snapshot renders the current state. The answer is only revealed once resolved.
func (g *Game) Snapshot() domain.RoundSnapshot {
	snap := domain.RoundSnapshot{
		Game:     g.Kind(),
		Round:    g.seq,
		State:    g.round.state,
		Question: g.round.question,
		Selected: g.round.selected,
		Verdict:  g.round.verdict,
		Score:    g.score,
		Streak:   g.streak,
	}
	if g.round.state == domain.RoundResolved {
		snap.Correct = g.round.question.Answer
	}
	return snap
}
