package queries

//go:generate mockgen -source=card.go -destination=../../testutil/mock/queries/card.go -package=queriesmock

import (
	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/usecase/shared"
)

type CardQueries interface {
	Normalize(in shared.CardInput, focus card.Field) CardFeedback
}

type cardQueriesImpl struct {
	observer shared.CheckoutObserver
}

func NewCardQueries(observer shared.CheckoutObserver) CardQueries {
	return &cardQueriesImpl{observer: observer}
}

// Normalize formats raw card input and reports field completion. focus is
// the field being typed; it may be empty.
func (q *cardQueriesImpl) Normalize(in shared.CardInput, focus card.Field) CardFeedback {
	c := card.NewCard(in.Number, in.Name, in.Expiry, in.CVV)
	brand := c.Brand()

	fb := CardFeedback{
		Number:         c.Number(),
		Expiry:         c.Expiry(),
		BrandID:        brand.ID,
		BrandName:      brand.Name,
		MaxDigits:      card.UnknownMaxDigits,
		CVVLength:      card.DefaultCVVLength,
		NumberComplete: c.NumberComplete(),
		NameComplete:   c.NameComplete(),
		ExpiryComplete: c.ExpiryComplete(),
		CVVComplete:    c.CVVComplete(),
		Valid:          c.Valid(),
	}
	if !brand.IsZero() {
		fb.MaxDigits = brand.Length
		fb.CVVLength = brand.CVVLength
	}
	if focus.IsValid() {
		if next, ok := c.Advance(focus); ok {
			fb.NextField = next
		}
	}

	if c.NumberComplete() {
		q.observer.CardValidated(brand.ID, fb.Valid)
	}
	return fb
}
