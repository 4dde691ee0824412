package app

import (
	"context"
	"fmt"

	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/narration"
)

// ScreenKind is the closed set of screens.
type ScreenKind string

const (
	ScreenHome       ScreenKind = "home"
	ScreenGameSelect ScreenKind = "game-select"
	ScreenGame       ScreenKind = "game"
)

// Screen is where the player is. Game is set only on ScreenGame.
type Screen struct {
	Kind ScreenKind      `json:"kind"`
	Game domain.GameKind `json:"game,omitempty"`
}

type ActionKind string

const (
	ActionStart  ActionKind = "start"
	ActionSelect ActionKind = "select"
	ActionAnswer ActionKind = "answer"
	ActionHint   ActionKind = "hint"
	ActionBack   ActionKind = "back"
)

// Action is a player input. Game is read by select, Value by answer.
type Action struct {
	Kind  ActionKind
	Game  domain.GameKind
	Value string
}

// View is what the presentation layer renders after an action.
type View struct {
	Screen  Screen                `json:"screen"`
	Round   *domain.RoundSnapshot `json:"round,omitempty"`
	Outcome *Outcome              `json:"outcome,omitempty"`
}

// Navigator drives one player's screen flow. Not safe for concurrent use.
type Navigator struct {
	service   *GameService
	narrator  narration.Narrator // handed to each game, which queues its own speech
	speech    *narration.Async   // menu lines
	screen    Screen
	sessionID string
}

func NewNavigator(service *GameService, narrator narration.Narrator) *Navigator {
	return &Navigator{
		service:  service,
		narrator: narrator,
		speech:   narration.NewAsync(narrator, narration.DefaultQueueSize, service.opts.Logger),
		screen:   Screen{Kind: ScreenHome},
	}
}

func (n *Navigator) Screen() Screen { return n.screen }

// SessionID is the active game session, empty outside a game screen.
func (n *Navigator) SessionID() string { return n.sessionID }

// Dispatch applies an action to the current screen.
func (n *Navigator) Dispatch(ctx context.Context, a Action) (View, error) {
	switch n.screen.Kind {
	case ScreenHome:
		if a.Kind == ActionStart {
			n.speech.Speak(ctx, n.service.Phrases().Welcome())
			n.screen = Screen{Kind: ScreenGameSelect}
			return n.view(), nil
		}
	case ScreenGameSelect:
		switch a.Kind {
		case ActionSelect:
			snap, err := n.service.StartGame(ctx, a.Game, n.narrator)
			if err != nil {
				return n.view(), err
			}
			n.screen = Screen{Kind: ScreenGame, Game: a.Game}
			n.sessionID = snap.SessionID
			return View{Screen: n.screen, Round: &snap}, nil
		case ActionBack:
			n.screen = Screen{Kind: ScreenHome}
			return n.view(), nil
		}
	case ScreenGame:
		switch a.Kind {
		case ActionAnswer:
			snap, out, err := n.service.Submit(ctx, n.sessionID, a.Value)
			if err != nil {
				return n.view(), err
			}
			return View{Screen: n.screen, Round: &snap, Outcome: &out}, nil
		case ActionHint:
			if err := n.service.Hint(ctx, n.sessionID); err != nil {
				return n.view(), err
			}
			return n.view(), nil
		case ActionBack:
			n.leaveGame(ctx)
			n.screen = Screen{Kind: ScreenGameSelect}
			return n.view(), nil
		}
	}
	return n.view(), fmt.Errorf("%w: %s on %s", domain.ErrInvalidTransition, a.Kind, n.screen.Kind)
}

// Close ends any game still open and stops menu narration, e.g. when the
// connection drops.
func (n *Navigator) Close(ctx context.Context) {
	n.leaveGame(ctx)
	n.speech.Close()
}

func (n *Navigator) leaveGame(ctx context.Context) {
	if n.sessionID == "" {
		return
	}
	n.service.EndGame(ctx, n.sessionID)
	n.sessionID = ""
}

func (n *Navigator) view() View {
	return View{Screen: n.screen}
}
