package queries

//go:generate mockgen -source=checkout.go -destination=../../testutil/mock/queries/checkout.go -package=queriesmock

import (
	"context"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/session"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*CheckoutView, error)
	ShippingMethods(ctx context.Context) []checkout.ShippingMethod
}

type checkoutQueriesImpl struct {
	sessions *session.Registry
}

func NewCheckoutQueries(sessions *session.Registry) CheckoutQueries {
	return &checkoutQueriesImpl{sessions: sessions}
}

func (q *checkoutQueriesImpl) Get(_ context.Context, userID uuid.UUID) (*CheckoutView, error) {
	s, ok := q.sessions.Get(userID)
	if !ok {
		return nil, errs.ErrCheckoutNotFound
	}
	return NewCheckoutView(s.View()), nil
}

func (q *checkoutQueriesImpl) ShippingMethods(_ context.Context) []checkout.ShippingMethod {
	return checkout.ShippingMethods()
}
