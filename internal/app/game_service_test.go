package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/infra/memory"
	"hoops-trivia/internal/narration"
	"hoops-trivia/internal/quiz"
	"hoops-trivia/internal/random"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeClock records scheduled callbacks so tests decide when they run.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) app.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last(t *testing.T) *fakeTimer {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		t.Fatalf("nothing scheduled")
	}
	return c.timers[len(c.timers)-1]
}

// fire runs the latest timer unless it was stopped.
func (c *fakeClock) fire(t *testing.T) {
	t.Helper()
	timer := c.last(t)
	if !timer.stopped {
		timer.fn()
	}
}

func newTestService(clock *fakeClock, delay time.Duration) *app.GameService {
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Builtin()), 5*time.Minute)
	return app.NewGameService(memory.NewSessionStore(), catalogs, app.Options{
		AdvanceDelay: delay,
		Source:       random.NewSeeded(42),
		AfterFunc:    clock.AfterFunc,
	})
}

// waitSpoken polls rec until kind has been spoken n times. Narration is
// queued per session, so it lands shortly after the call that caused it.
func waitSpoken(t *testing.T, rec *narration.Recorder, kind narration.Kind, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for rec.Count(kind) < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d %s phrases, got %+v", n, kind, rec.Phrases())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func answerOf(t *testing.T, snap domain.RoundSnapshot) string {
	t.Helper()
	value, ok := quiz.AnswerFor(snap.Game, snap.Question.Subject)
	if !ok {
		t.Fatalf("no answer for %+v", snap.Question.Subject)
	}
	return value
}

func TestStartGameServesWellFormedRound(t *testing.T) {
	ctx := context.Background()
	service := newTestService(&fakeClock{}, 0)

	for _, kind := range domain.GameKinds {
		snap, err := service.StartGame(ctx, kind, nil)
		if err != nil {
			t.Fatalf("start %s: %v", kind, err)
		}
		if snap.SessionID == "" || snap.Game != kind || snap.Round != 1 {
			t.Fatalf("unexpected snapshot for %s: %+v", kind, snap)
		}
		if snap.State != domain.RoundAwaitingAnswer || snap.Correct != "" {
			t.Fatalf("answer leaked before resolution: %+v", snap)
		}
		if len(snap.Question.Candidates) != domain.CandidateCount {
			t.Fatalf("expected %d candidates, got %d", domain.CandidateCount, len(snap.Question.Candidates))
		}
	}
}

func TestStartGameRejectsUnknownKind(t *testing.T) {
	service := newTestService(&fakeClock{}, 0)
	if _, err := service.StartGame(context.Background(), "free-throws", nil); !errors.Is(err, domain.ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
}

func TestSubmitSchedulesAutoAdvance(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, 0)
	rec := &narration.Recorder{}

	snap, err := service.StartGame(ctx, domain.GamePlayerTeam, rec)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	resolved, out, err := service.Submit(ctx, snap.SessionID, answerOf(t, snap))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Applied || out.Verdict != domain.VerdictCorrect || resolved.State != domain.RoundResolved {
		t.Fatalf("expected correct resolution, got %+v %+v", out, resolved)
	}
	if got := clock.last(t).delay; got != 2*time.Second {
		t.Fatalf("expected player-team reveal of 2s, got %v", got)
	}

	clock.fire(t)
	next, err := service.Snapshot(ctx, snap.SessionID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if next.Round != 2 || next.State != domain.RoundAwaitingAnswer {
		t.Fatalf("expected round 2 awaiting, got %+v", next)
	}
	if next.Score != 1 || next.Streak != 1 {
		t.Fatalf("score lost across rounds: %+v", next)
	}
	waitSpoken(t, rec, narration.KindPrompt, 2)
}

func TestRepeatSubmitDoesNotReschedule(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, 0)

	snap, _ := service.StartGame(ctx, domain.GameJerseyNumber, nil)
	service.Submit(ctx, snap.SessionID, answerOf(t, snap))
	_, out, err := service.Submit(ctx, snap.SessionID, "not-a-number")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Applied {
		t.Fatalf("second submission must be ignored")
	}
	if len(clock.timers) != 1 {
		t.Fatalf("expected one scheduled advance, got %d", len(clock.timers))
	}
	if got := clock.timers[0].delay; got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s reveal, got %v", got)
	}
}

func TestEndGameCancelsPendingAdvance(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, time.Second)
	rec := &narration.Recorder{}

	snap, _ := service.StartGame(ctx, domain.GameLogoMatch, rec)
	service.Submit(ctx, snap.SessionID, answerOf(t, snap))
	waitSpoken(t, rec, narration.KindCorrect, 1)
	service.EndGame(ctx, snap.SessionID)

	timer := clock.last(t)
	if !timer.stopped {
		t.Fatalf("expected pending advance stopped")
	}
	// a callback already in flight must still be a no-op
	timer.fn()
	if _, err := service.Snapshot(ctx, snap.SessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session removed, got %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if rec.Count(narration.KindPrompt) != 1 || rec.Count(narration.KindCorrect) != 1 {
		t.Fatalf("unexpected narration after end: %+v", rec.Phrases())
	}
}

func TestSlowNarratorDoesNotStallRounds(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, time.Second)

	release := make(chan struct{})
	stuck := narration.NarratorFunc(func(context.Context, narration.Phrase) { <-release })
	defer close(release)

	snap, err := service.StartGame(ctx, domain.GameJerseyNumber, stuck)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer service.EndGame(ctx, snap.SessionID)

	answer := answerOf(t, snap)
	submitted := make(chan error, 1)
	go func() {
		_, _, err := service.Submit(ctx, snap.SessionID, answer)
		submitted <- err
	}()
	select {
	case err := <-submitted:
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit blocked behind narration")
	}

	timer := clock.last(t)
	fired := make(chan struct{})
	go func() {
		timer.fn()
		close(fired)
	}()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("advance blocked behind narration")
	}

	next, err := service.Snapshot(ctx, snap.SessionID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if next.Round != 2 || next.State != domain.RoundAwaitingAnswer {
		t.Fatalf("expected round 2 awaiting, got %+v", next)
	}
}

func TestStaleTimerIsIgnored(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, time.Second)

	snap, _ := service.StartGame(ctx, domain.GameTeamGuess, nil)
	service.Submit(ctx, snap.SessionID, answerOf(t, snap))
	stale := clock.last(t)
	stale.fn()
	stale.fn()

	next, _ := service.Snapshot(ctx, snap.SessionID)
	if next.Round != 2 {
		t.Fatalf("a repeated callback must advance once, got round %d", next.Round)
	}
}

func TestSubscribeReceivesRounds(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{}
	service := newTestService(clock, time.Second)

	snap, _ := service.StartGame(ctx, domain.GameJerseyNumber, nil)
	ch, cancel, err := service.Subscribe(ctx, snap.SessionID)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if initial := <-ch; initial.Round != 1 || initial.SessionID != snap.SessionID {
		t.Fatalf("unexpected initial snapshot: %+v", initial)
	}

	service.Submit(ctx, snap.SessionID, "999")
	if update := <-ch; update.State != domain.RoundResolved || update.Verdict != domain.VerdictIncorrect {
		t.Fatalf("expected resolved incorrect update, got %+v", update)
	}

	clock.fire(t)
	if update := <-ch; update.Round != 2 || update.State != domain.RoundAwaitingAnswer {
		t.Fatalf("expected next round update, got %+v", update)
	}

	service.EndGame(ctx, snap.SessionID)
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after end")
	}
}

func TestUnknownSession(t *testing.T) {
	ctx := context.Background()
	service := newTestService(&fakeClock{}, 0)

	if _, _, err := service.Submit(ctx, "missing", "x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("submit: expected ErrSessionNotFound, got %v", err)
	}
	if err := service.Hint(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("hint: expected ErrSessionNotFound, got %v", err)
	}
	if _, _, err := service.Subscribe(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("subscribe: expected ErrSessionNotFound, got %v", err)
	}
	service.EndGame(ctx, "missing")
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	service := newTestService(&fakeClock{}, time.Second)

	a, _ := service.StartGame(ctx, domain.GameJerseyNumber, nil)
	b, _ := service.StartGame(ctx, domain.GameJerseyNumber, nil)
	if a.SessionID == b.SessionID {
		t.Fatalf("expected distinct session ids")
	}
	service.Submit(ctx, a.SessionID, answerOf(t, a))

	other, _ := service.Snapshot(ctx, b.SessionID)
	if other.Score != 0 || other.State != domain.RoundAwaitingAnswer {
		t.Fatalf("answer leaked across sessions: %+v", other)
	}
}
