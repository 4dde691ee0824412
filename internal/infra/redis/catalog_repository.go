package redis

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"hoops-trivia/internal/catalog"
	"hoops-trivia/internal/infra/memory"
)

// CatalogKey holds the JSON-encoded catalog.
const CatalogKey = "trivia:catalog"

// CatalogRepository caches the catalog in Redis and falls back to a loader on cache miss.
type CatalogRepository struct {
	client *redis.Client
	loader memory.CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
}

func NewCatalogRepository(client *redis.Client, loader memory.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if c, ok := r.cached(ctx); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(CatalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if c, ok := r.cached(ctx); ok {
			return c, nil
		}

		c, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(c.Data())
		if err != nil {
			return nil, err
		}
		// best-effort: a failed write only costs another load
		_ = r.client.Set(ctx, CatalogKey, raw, r.ttlWithJitter()).Err()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*catalog.Catalog), nil
}

// cached treats unreadable or invalid cache entries as a miss.
func (r *CatalogRepository) cached(ctx context.Context) (*catalog.Catalog, bool) {
	raw, err := r.client.Get(ctx, CatalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var data catalog.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	c, err := catalog.FromData(data)
	if err != nil {
		return nil, false
	}
	return c, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(rand.Int64N(jitterMax+1))
}
