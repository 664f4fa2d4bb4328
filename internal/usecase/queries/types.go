package queries

import (
	"time"

	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/usecase/session"

	"github.com/google/uuid"
)

// CardView never carries the CVV or the full number.
type CardView struct {
	MaskedNumber   string
	Last4          string
	Name           string
	Expiry         string
	BrandID        string
	BrandName      string
	HasCVV         bool
	NumberComplete bool
	NameComplete   bool
	ExpiryComplete bool
	CVVComplete    bool
	Valid          bool
}

type ReservationView struct {
	ID        string
	Status    reservation.Status
	ExpiresAt *time.Time
	EndTime   *time.Time
	TimeLeft  int
}

type CheckoutView struct {
	SessionID   uuid.UUID
	Step        checkout.Step
	AddressID   string
	Shipping    *checkout.ShippingMethod
	Card        CardView
	Reservation ReservationView
	CanPay      bool
	Expired     bool
}

func NewCheckoutView(v session.View) *CheckoutView {
	view := &CheckoutView{
		SessionID: v.SessionID,
		Step:      v.Step,
		AddressID: v.AddressID,
		Card:      NewCardView(v.Card),
		Reservation: ReservationView{
			ID:        v.Reservation.ID,
			Status:    v.Reservation.Status,
			ExpiresAt: v.Reservation.ExpiresAt,
			EndTime:   v.Reservation.EndTime,
			TimeLeft:  v.Reservation.TimeLeft,
		},
		CanPay:  v.CanPay,
		Expired: v.Expired,
	}
	if m, ok := checkout.FindShippingMethod(v.ShippingID); ok {
		view.Shipping = &m
	}
	return view
}

func NewCardView(c card.Card) CardView {
	return CardView{
		MaskedNumber:   c.Masked(),
		Last4:          c.Last4(),
		Name:           c.Name(),
		Expiry:         c.Expiry(),
		BrandID:        c.Brand().ID,
		BrandName:      c.Brand().Name,
		HasCVV:         c.CVV() != "",
		NumberComplete: c.NumberComplete(),
		NameComplete:   c.NameComplete(),
		ExpiryComplete: c.ExpiryComplete(),
		CVVComplete:    c.CVVComplete(),
		Valid:          c.Valid(),
	}
}

type ProductView struct {
	ID          string
	Name        string
	Brand       string
	Category    string
	Description string
	PriceCents  int64
	Stock       int
	InStock     bool
	Score       int
}

// CardFeedback is the normalizer's answer for one keystroke.
type CardFeedback struct {
	Number         string
	Expiry         string
	BrandID        string
	BrandName      string
	MaxDigits      int
	CVVLength      int
	NumberComplete bool
	NameComplete   bool
	ExpiryComplete bool
	CVVComplete    bool
	Valid          bool
	// NextField is set when the focused field just became complete.
	NextField card.Field
}
