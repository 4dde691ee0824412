package memory

import (
	"context"
	"testing"
	"time"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	service := app.NewGameService(store, NewCatalogRepository(NewStaticCatalogLoader(catalog.Builtin()), time.Minute), app.Options{})

	snap, err := service.StartGame(context.Background(), domain.GameTeamGuess, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	session, ok := store.Get(snap.SessionID)
	if !ok || session.ID() != snap.SessionID {
		t.Fatalf("expected session %s present", snap.SessionID)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one session, got %d", store.Len())
	}

	service.EndGame(context.Background(), snap.SessionID)
	if _, ok := store.Get(snap.SessionID); ok {
		t.Fatalf("expected session removed after end")
	}
	if !session.IsClosed() {
		t.Fatalf("expected session closed after end")
	}
}
