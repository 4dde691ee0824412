package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"hoops-trivia/internal/catalog"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(catalog.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	c, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
	if _, ok := c.TeamByID("lakers"); !ok {
		t.Fatalf("expected cached catalog to resolve lakers")
	}
}

func TestCatalogRepositoryReloadsAfterTTL(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(catalog.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetCatalog(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetCatalog(context.Background())

	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryPropagatesLoaderErrors(t *testing.T) {
	boom := errors.New("db down")
	repo := NewCatalogRepository(failingLoader{err: boom}, time.Minute)
	if _, err := repo.GetCatalog(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

type failingLoader struct{ err error }

func (l failingLoader) LoadCatalog(context.Context) (*catalog.Catalog, error) {
	return nil, l.err
}
