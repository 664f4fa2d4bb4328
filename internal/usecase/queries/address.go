package queries

//go:generate mockgen -source=address.go -destination=../../testutil/mock/queries/address.go -package=queriesmock

import (
	"context"
	"sort"

	"storefront-checkout/internal/usecase/shared"
)

type AddressQueries interface {
	List(ctx context.Context) ([]shared.AddressRecord, error)
}

type addressQueriesImpl struct {
	addresses shared.AddressService
}

func NewAddressQueries(addresses shared.AddressService) AddressQueries {
	return &addressQueriesImpl{addresses: addresses}
}

// List returns the shopper's addresses with the default one first.
func (q *addressQueriesImpl) List(ctx context.Context) ([]shared.AddressRecord, error) {
	list, err := q.addresses.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].IsDefault && !list[j].IsDefault
	})
	return list, nil
}
