package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"crm_cotizador/internal/domain/entities"
	"crm_cotizador/internal/usecase/interfaces"
)

const priceCatalogKey = "crm:price_scheme"

// PriceCatalogRedisCache stores the price scheme as a single JSON value.
type PriceCatalogRedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IPriceCatalogCache = (*PriceCatalogRedisCache)(nil)

// NewPriceCatalogRedisCache returns a cache whose entries expire after ttl.
// A ttl <= 0 keeps the entry until Invalidate is called.
func NewPriceCatalogRedisCache(client *redis.Client, ttl time.Duration) *PriceCatalogRedisCache {
	return &PriceCatalogRedisCache{client: client, ttl: ttl}
}

func (c *PriceCatalogRedisCache) Get(ctx context.Context) (entities.PriceScheme, bool, error) {
	raw, err := c.client.Get(ctx, priceCatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.PriceScheme{}, false, nil
	}
	if err != nil {
		return entities.PriceScheme{}, false, err
	}

	var s entities.PriceScheme
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.PriceScheme{}, false, err
	}
	return s, true, nil
}

func (c *PriceCatalogRedisCache) Set(ctx context.Context, s entities.PriceScheme) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, priceCatalogKey, raw, ttl).Err()
}

func (c *PriceCatalogRedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, priceCatalogKey).Err()
}
