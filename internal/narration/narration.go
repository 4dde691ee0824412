// Package narration turns game events into short spoken phrases.
// Speaking is best effort: nothing here reports failure to the caller.
package narration

import (
	"context"
	"log/slog"
	"sync"

	"hoops-trivia/internal/logging"
)

// Kind tags a phrase with the event that produced it.
type Kind string

const (
	KindWelcome     Kind = "welcome"
	KindPrompt      Kind = "prompt"
	KindHint        Kind = "hint"
	KindCorrect     Kind = "correct"
	KindIncorrect   Kind = "incorrect"
	KindCelebration Kind = "celebration"
)

// Phrase is a line to speak. Rate is a speaking-rate hint, 1 is normal.
type Phrase struct {
	Kind Kind    `json:"kind"`
	Text string  `json:"text"`
	Rate float64 `json:"rate"`
}

// Narrator speaks phrases. Game code reaches it through Async, so a slow
// implementation never holds up a round.
type Narrator interface {
	Speak(ctx context.Context, p Phrase)
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(ctx context.Context, p Phrase)

func (f NarratorFunc) Speak(ctx context.Context, p Phrase) { f(ctx, p) }

// Nop discards everything.
type Nop struct{}

func (Nop) Speak(context.Context, Phrase) {}

// Recorder keeps every phrase it is given. Useful in tests.
type Recorder struct {
	mu      sync.Mutex
	phrases []Phrase
}

func (r *Recorder) Speak(_ context.Context, p Phrase) {
	r.mu.Lock()
	r.phrases = append(r.phrases, p)
	r.mu.Unlock()
}

// Phrases returns a copy of what has been spoken so far.
func (r *Recorder) Phrases() []Phrase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Phrase(nil), r.phrases...)
}

// Count returns how many phrases of kind were spoken.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.phrases {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Safe guards a narrator so a panic or nil backend never reaches game logic.
func Safe(n Narrator, logger *slog.Logger) Narrator {
	if n == nil {
		return Nop{}
	}
	return NarratorFunc(func(ctx context.Context, p Phrase) {
		defer func() {
			if r := recover(); r != nil {
				logging.Warn(logger, "narration failed", "kind", p.Kind, "panic", r)
			}
		}()
		if p.Text == "" {
			return
		}
		n.Speak(ctx, p)
	})
}
