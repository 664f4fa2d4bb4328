//go:build unit

package builder

import (
	"time"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/reservation"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	SessionID     uuid.UUID
	Step          checkout.Step
	AddressID     string
	ShippingID    string
	ReservationID string
	Status        reservation.Status
	EndTime       time.Time
	TimeLeft      int
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		SessionID:     uuid.New(),
		Step:          checkout.StepAddress,
		ReservationID: "cart-1",
		Status:        reservation.StatusPending,
		EndTime:       time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		TimeLeft:      1800,
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) AtStep(step checkout.Step) *CheckoutBuilder {
	b.Step = step
	return b
}

func (b *CheckoutBuilder) Expired() *CheckoutBuilder {
	b.Status = reservation.StatusExpired
	b.TimeLeft = 0
	return b
}

func (b *CheckoutBuilder) BuildView() *queries.CheckoutView {
	end := b.EndTime
	view := &queries.CheckoutView{
		SessionID: b.SessionID,
		Step:      b.Step,
		AddressID: b.AddressID,
		Reservation: queries.ReservationView{
			ID:        b.ReservationID,
			Status:    b.Status,
			ExpiresAt: &end,
			EndTime:   &end,
			TimeLeft:  b.TimeLeft,
		},
		CanPay:  b.Status == reservation.StatusPending && b.TimeLeft > 0,
		Expired: b.Status == reservation.StatusExpired,
	}
	if m, ok := checkout.FindShippingMethod(b.ShippingID); ok {
		view.Shipping = &m
	}
	return view
}

func (b *CheckoutBuilder) BuildStartRequestDTO() reqdto.StartCheckoutRequest {
	return reqdto.StartCheckoutRequest{
		Items: []reqdto.CartItemRequest{
			{ID: "sku-1", Quantity: 2},
			{ID: "sku-2", Quantity: 1},
		},
	}
}
