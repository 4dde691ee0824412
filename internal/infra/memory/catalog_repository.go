package memory

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"hoops-trivia/internal/catalog"
)

// CatalogLoader fetches the catalog from a backing store (e.g., Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// CatalogRepository caches the catalog with a TTL to avoid repeated DB hits.
// A TTL of zero or less caches forever.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu        sync.RWMutex
	cached    *catalog.Catalog
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if c, ok := r.fresh(r.clock()); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		if c, ok := r.fresh(now); ok {
			return c, nil
		}

		c, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = c
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*catalog.Catalog), nil
}

func (r *CatalogRepository) fresh(now time.Time) (*catalog.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cached == nil {
		return nil, false
	}
	if r.ttl > 0 && !r.expiresAt.After(now) {
		return nil, false
	}
	return r.cached, true
}

// StaticCatalogLoader serves a fixed catalog (the built-in dataset, tests).
type StaticCatalogLoader struct {
	catalog *catalog.Catalog
}

func NewStaticCatalogLoader(c *catalog.Catalog) *StaticCatalogLoader {
	return &StaticCatalogLoader{catalog: c}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context) (*catalog.Catalog, error) {
	return l.catalog, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int64N(jitterMax+1))
}
