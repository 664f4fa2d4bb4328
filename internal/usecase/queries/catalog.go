package queries

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/queries/catalog.go -package=queriesmock

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/domain/catalog"
	"storefront-checkout/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CatalogQueries interface {
	Search(ctx context.Context, query string, limit int) ([]ProductView, error)
}

type catalogQueriesImpl struct {
	catalog shared.CatalogService
	cache   shared.ProductCache
}

func NewCatalogQueries(catalog shared.CatalogService, cache shared.ProductCache) CatalogQueries {
	return &catalogQueriesImpl{
		catalog: catalog,
		cache:   cache,
	}
}

func (q *catalogQueriesImpl) Search(ctx context.Context, query string, limit int) ([]ProductView, error) {
	products, err := q.products(ctx)
	if err != nil {
		return nil, err
	}

	matches := catalog.Search(products, query, limit)
	views := make([]ProductView, len(matches))
	for i, m := range matches {
		if err := copier.Copy(&views[i], &m.Product); err != nil {
			return nil, err
		}
		views[i].InStock = m.Product.InStock()
		views[i].Score = m.Score
	}
	return views, nil
}

// products reads through the cache. A broken cache only costs an upstream
// call.
func (q *catalogQueriesImpl) products(ctx context.Context) ([]catalog.Product, error) {
	if q.cache != nil {
		cached, ok, err := q.cache.GetProducts(ctx)
		if err != nil {
			slog.Warn("product cache read failed", "error", err)
		}
		if ok {
			return cached, nil
		}
	}

	products, err := q.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if q.cache != nil {
		if err := q.cache.SetProducts(ctx, products); err != nil {
			slog.Warn("product cache write failed", "error", err)
		}
	}
	return products, nil
}
