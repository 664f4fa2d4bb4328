package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyCatalogProducts holds the JSON encoded product list.
	KeyCatalogProducts = "catalog:products"

	DefaultCatalogTTL = 5 * time.Minute
)

// Store is the part of the redis client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

type ProductCache struct {
	store Store
	ttl   time.Duration
}

func NewProductCache(store Store, cfg config.RedisConfig) *ProductCache {
	ttl := cfg.CatalogTTL
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &ProductCache{store: store, ttl: ttl}
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]catalog.Product, bool, error) {
	raw, err := c.store.Get(ctx, KeyCatalogProducts).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "read product cache")
	}

	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, errs.Wrap(err, "decode product cache")
	}
	return products, true, nil
}

func (c *ProductCache) SetProducts(ctx context.Context, products []catalog.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return errs.Wrap(err, "encode product cache")
	}
	if err := c.store.Set(ctx, KeyCatalogProducts, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write product cache")
	}
	return nil
}
