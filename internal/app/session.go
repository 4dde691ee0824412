package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/logging"
	"hoops-trivia/internal/narration"
)

// Timer is the part of *time.Timer a session needs to cancel a pending advance.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc is the production implementation.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Session owns one player's game: it serializes transitions, schedules the
// auto-advance after each answer and fans snapshots out to subscribers.
type Session struct {
	id        string
	createdAt time.Time
	delay     time.Duration
	after     AfterFunc
	logger    *slog.Logger
	speech    *narration.Async

	mu          sync.Mutex
	game        *Game
	pending     Timer
	closed      bool
	subscribers map[chan domain.RoundSnapshot]struct{}
}

func newSession(id string, game *Game, speech *narration.Async, delay time.Duration, after AfterFunc, now func() time.Time, logger *slog.Logger) *Session {
	if after == nil {
		after = realAfterFunc
	}
	if now == nil {
		now = time.Now
	}
	return &Session{
		id:          id,
		createdAt:   now(),
		delay:       delay,
		after:       after,
		logger:      logger,
		speech:      speech,
		game:        game,
		subscribers: make(map[chan domain.RoundSnapshot]struct{}),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) Kind() domain.GameKind { return s.game.Kind() }

func (s *Session) snapshot() domain.RoundSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) submit(ctx context.Context, value string) (domain.RoundSnapshot, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		snap := s.snapshotLocked()
		return snap, Outcome{Verdict: snap.Verdict, Score: snap.Score, Streak: snap.Streak}
	}

	out := s.game.Submit(ctx, value)
	if !out.Applied {
		return s.snapshotLocked(), out
	}
	logging.Debug(s.logger, "round resolved",
		logging.FieldSession, s.id,
		logging.FieldGame, s.game.Kind(),
		logging.FieldRound, s.game.Seq(),
		logging.FieldVerdict, out.Verdict,
	)
	s.scheduleAdvanceLocked()
	return s.broadcastLocked(), out
}

func (s *Session) hint(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.game.Hint(ctx)
	}
}

// scheduleAdvanceLocked arms the timer for the round that just resolved.
func (s *Session) scheduleAdvanceLocked() {
	if s.pending != nil {
		s.pending.Stop()
	}
	seq := s.game.Seq()
	s.pending = s.after(s.delay, func() { s.advance(seq) })
}

// advance runs on the timer goroutine. It does nothing if the session was
// closed or the round it was scheduled for is gone.
func (s *Session) advance(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.game.Seq() != seq || s.game.State() != domain.RoundResolved {
		return
	}
	s.pending = nil
	if err := s.game.Advance(context.Background()); err != nil {
		logging.Error(s.logger, "advance round", err, logging.FieldSession, s.id)
		return
	}
	s.broadcastLocked()
}

// close cancels any pending advance, stops narration and releases subscribers.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	if s.speech != nil {
		s.speech.Close()
	}
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// IsClosed reports whether the session has been ended.
func (s *Session) IsClosed() bool {
	return s.isClosed()
}

func (s *Session) subscribe() (<-chan domain.RoundSnapshot, func()) {
	ch := make(chan domain.RoundSnapshot, 8)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() domain.RoundSnapshot {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// slow reader: replace the oldest pending snapshot with the newest
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (s *Session) snapshotLocked() domain.RoundSnapshot {
	snap := s.game.Snapshot()
	snap.SessionID = s.id
	return snap
}
