package components

import (
	"storefront-checkout/internal/infra/cache"
	"storefront-checkout/internal/infra/metrics"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/infra/storefront"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Journal
		repository.NewJournal,
		fx.Annotate(
			func(j *repository.Journal) *repository.Journal { return j },
			fx.As(new(shared.JournalReader)),
		),
		// Storefront API
		fx.Annotate(
			metrics.NewUpstream,
			fx.As(new(storefront.Observer)),
		),
		NewStorefrontClient,
		fx.Annotate(
			func(c *storefront.Client) *storefront.Client { return c },
			fx.As(new(shared.CartService)),
			fx.As(new(shared.AuthService)),
			fx.As(new(shared.CatalogService)),
		),
		fx.Annotate(
			func(c *storefront.Client) *storefront.AddressClient { return c.Addresses() },
			fx.As(new(shared.AddressService)),
		),
		// Catalog cache
		fx.Annotate(
			func(client *redis.Client) *redis.Client { return client },
			fx.As(new(cache.Store)),
		),
		fx.Annotate(
			NewProductCache,
			fx.As(new(shared.ProductCache)),
		),
	),
)

func NewStorefrontClient(cfg config.Config, observer storefront.Observer) *storefront.Client {
	return storefront.NewClient(cfg.Storefront, observer)
}

func NewProductCache(store cache.Store, cfg config.Config) *cache.ProductCache {
	return cache.NewProductCache(store, cfg.Redis)
}
