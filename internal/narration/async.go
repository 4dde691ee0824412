package narration

import (
	"context"
	"log/slog"
	"sync"

	"hoops-trivia/internal/logging"
)

// DefaultQueueSize bounds the phrases waiting behind a slow backend.
const DefaultQueueSize = 8

type queued struct {
	ctx context.Context
	p   Phrase
}

// Async speaks through next on its own goroutine. Speak never blocks:
// phrases are kept in order and dropped when the queue is full.
type Async struct {
	next   Narrator
	logger *slog.Logger
	queue  chan queued
	done   chan struct{}
	once   sync.Once
}

// NewAsync starts the drain goroutine. Call Close to stop it.
func NewAsync(next Narrator, size int, logger *slog.Logger) *Async {
	if size <= 0 {
		size = DefaultQueueSize
	}
	a := &Async{
		next:   Safe(next, logger),
		logger: logger,
		queue:  make(chan queued, size),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) Speak(ctx context.Context, p Phrase) {
	if p.Text == "" {
		return
	}
	select {
	case <-a.done:
		return
	default:
	}
	select {
	case a.queue <- queued{ctx: ctx, p: p}:
	default:
		logging.Debug(a.logger, "narration queue full, phrase dropped", "kind", p.Kind)
	}
}

// Close stops the drain goroutine once the phrase in progress returns.
// Queued phrases are discarded. Safe to call more than once.
func (a *Async) Close() {
	a.once.Do(func() { close(a.done) })
}

func (a *Async) run() {
	for {
		select {
		case <-a.done:
			return
		case q := <-a.queue:
			select {
			case <-a.done:
				return
			default:
			}
			a.next.Speak(q.ctx, q.p)
		}
	}
}
