package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hoops-trivia/internal/app"
	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/domain"
	"hoops-trivia/internal/infra/memory"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Builtin()), 0)
	service := app.NewGameService(store, catalogs, app.Options{NewID: func() string { return "s-1" }})

	if _, err := service.StartGame(context.Background(), domain.GameJerseyNumber, nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !mr.Exists("trivia:session:s-1") {
		t.Fatalf("expected redis key to be set")
	}
	if got, _ := mr.Get("trivia:session:s-1"); got != string(domain.GameJerseyNumber) {
		t.Fatalf("expected marker to carry game kind, got %q", got)
	}

	service.EndGame(context.Background(), "s-1")
	if mr.Exists("trivia:session:s-1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, ok := store.Get("s-1"); ok {
		t.Fatalf("expected session dropped locally")
	}
}

func TestSessionStoreRenewsMarkerOnActivity(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Builtin()), 0)
	service := app.NewGameService(store, catalogs, app.Options{NewID: func() string { return "s-1" }})
	defer service.EndGame(ctx, "s-1")

	if _, err := service.StartGame(ctx, domain.GameTeamGuess, nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	mr.FastForward(40 * time.Second)
	if _, err := service.Snapshot(ctx, "s-1"); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if ttl := mr.TTL("trivia:session:s-1"); ttl != time.Minute {
		t.Fatalf("expected ttl renewed to 1m, got %v", ttl)
	}

	mr.FastForward(40 * time.Second)
	if !mr.Exists("trivia:session:s-1") {
		t.Fatalf("active session marker expired")
	}

	mr.FastForward(2 * time.Minute)
	if mr.Exists("trivia:session:s-1") {
		t.Fatalf("expected idle marker to lapse")
	}
	if _, err := service.Snapshot(ctx, "s-1"); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !mr.Exists("trivia:session:s-1") {
		t.Fatalf("expected marker restored on next activity")
	}
}
