package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/logging"
	"hoops-trivia/internal/metrics"
	"hoops-trivia/internal/narration"
	"hoops-trivia/internal/quiz"
	"hoops-trivia/internal/random"
)

// SessionRepository abstracts where open game sessions live (in-memory, Redis-marked, etc).
type SessionRepository interface {
	Save(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// CatalogRepository loads the team/player catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// Default reveal times before the next question, per game.
var defaultAdvanceDelays = map[domain.GameKind]time.Duration{
	domain.GameLogoMatch:    1500 * time.Millisecond,
	domain.GameTeamGuess:    1500 * time.Millisecond,
	domain.GamePlayerTeam:   2 * time.Second,
	domain.GameJerseyNumber: 1500 * time.Millisecond,
}

// Options tunes a GameService. Zero values pick production defaults.
type Options struct {
	AdvanceDelay time.Duration // overrides the per-game defaults when > 0
	PlayerName   string
	Source       random.Source
	AfterFunc    AfterFunc
	Now          func() time.Time
	NewID        func() string
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

// GameService contains the game use cases.
type GameService struct {
	sessions SessionRepository
	catalogs CatalogRepository
	opts     Options
	phrases  *narration.Phrasebook
}

func NewGameService(sessions SessionRepository, catalogs CatalogRepository, opts Options) *GameService {
	if opts.Source == nil {
		opts.Source = random.Default
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &GameService{
		sessions: sessions,
		catalogs: catalogs,
		opts:     opts,
		phrases:  narration.NewPhrasebook(opts.PlayerName, opts.Source),
	}
}

// Phrases returns the phrasebook shared by every session.
func (s *GameService) Phrases() *narration.Phrasebook {
	return s.phrases
}

func (s *GameService) advanceDelay(kind domain.GameKind) time.Duration {
	if s.opts.AdvanceDelay > 0 {
		return s.opts.AdvanceDelay
	}
	return defaultAdvanceDelays[kind]
}

// StartGame opens a session for kind, generating its first question.
func (s *GameService) StartGame(ctx context.Context, kind domain.GameKind, narrator narration.Narrator) (domain.RoundSnapshot, error) {
	if !kind.Valid() {
		return domain.RoundSnapshot{}, fmt.Errorf("%w: %q", domain.ErrUnknownGame, kind)
	}
	cat, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return domain.RoundSnapshot{}, fmt.Errorf("load catalog: %w", err)
	}
	gen, err := quiz.New(kind, cat, s.opts.Source)
	if err != nil {
		return domain.RoundSnapshot{}, err
	}
	// speech runs off the session lock; a slow narrator only loses phrases
	speech := narration.NewAsync(narrator, narration.DefaultQueueSize, s.opts.Logger)
	game, err := NewGame(ctx, gen, speech, s.phrases, s.opts.Metrics)
	if err != nil {
		speech.Close()
		return domain.RoundSnapshot{}, err
	}

	session := newSession(s.opts.NewID(), game, speech, s.advanceDelay(kind), s.opts.AfterFunc, s.opts.Now, s.opts.Logger)
	s.sessions.Save(session)
	s.opts.Metrics.SessionOpened()
	logging.Info(s.opts.Logger, "game started", logging.FieldSession, session.ID(), logging.FieldGame, kind)
	return session.snapshot(), nil
}

// Submit answers the current round of a session.
func (s *GameService) Submit(_ context.Context, sessionID, value string) (domain.RoundSnapshot, Outcome, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.RoundSnapshot{}, Outcome{}, domain.ErrSessionNotFound
	}
	// Narration outlives the request that triggered it.
	snap, out := session.submit(context.Background(), value)
	return snap, out, nil
}

// Hint speaks the current subject's name.
func (s *GameService) Hint(_ context.Context, sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.hint(context.Background())
	return nil
}

// Snapshot returns the current view of a session.
func (s *GameService) Snapshot(_ context.Context, sessionID string) (domain.RoundSnapshot, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.RoundSnapshot{}, domain.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// Subscribe returns a channel that receives snapshots for a session.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, sessionID string) (<-chan domain.RoundSnapshot, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// EndGame discards a session. A pending auto-advance is cancelled.
func (s *GameService) EndGame(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.close()
	s.sessions.Delete(sessionID)
	s.opts.Metrics.SessionClosed()
	logging.Info(s.opts.Logger, "game ended", logging.FieldSession, sessionID, logging.FieldGame, session.Kind())
}
