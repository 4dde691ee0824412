package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"hoops-trivia/internal/app"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Sessions hold timers and subscriber channels and stay in process; Redis
// carries a liveness marker (game kind, with TTL) per open session. Each
// lookup renews the marker, so it lapses only once a session goes idle.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Save(session *app.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session
	s.touch(session)
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		s.touch(session)
	}
	return session, ok
}

// touch writes the marker with a fresh TTL, recreating it if it lapsed.
// Best-effort: Redis being down never fails a game.
func (s *SessionStore) touch(session *app.Session) {
	_ = s.client.Set(context.Background(), s.key(session.ID()), string(session.Kind()), s.ttl).Err()
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return
	}
	delete(s.sessions, sessionID)
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "trivia:session:" + sessionID
}
