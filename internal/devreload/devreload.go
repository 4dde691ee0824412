// Package devreload tells open browsers to reload when static assets change.
package devreload

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"

	"hoops-trivia/internal/logging"
)

// DefaultDebounce collapses editor save bursts into one reload.
const DefaultDebounce = 100 * time.Millisecond

type Reloader struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[chan struct{}]struct{}
}

func New(dir string, logger *slog.Logger) *Reloader {
	return &Reloader{
		dir:      dir,
		debounce: DefaultDebounce,
		logger:   logger,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[chan struct{}]struct{}),
	}
}

// Run watches the directory tree until ctx ends.
func (r *Reloader) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.Info(r.logger, "watching for changes", logging.FieldPath, r.dir)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			fire = time.After(r.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn(r.logger, "watch error", "error", err)
		case <-fire:
			fire = nil
			r.Notify()
		}
	}
}

// Notify asks every connected browser to reload.
func (r *Reloader) Notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	logging.Debug(r.logger, "reload broadcast", "clients", len(r.clients))
}

func (r *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ws, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	ch := make(chan struct{}, 1)
	r.mu.Lock()
	r.clients[ch] = struct{}{}
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.clients, ch)
		r.mu.Unlock()
	}()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ch:
			if err := ws.WriteJSON(map[string]string{"type": "reload"}); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}

func (r *Reloader) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
