package response

import (
	"time"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShippingMethodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"priceCents"`
	EstimatedDays int    `json:"estimatedDays"`
}

type CardResponse struct {
	MaskedNumber   string `json:"maskedNumber"`
	Last4          string `json:"last4,omitempty"`
	Name           string `json:"name"`
	Expiry         string `json:"expiry"`
	BrandID        string `json:"brandId,omitempty"`
	BrandName      string `json:"brandName,omitempty"`
	HasCVV         bool   `json:"hasCvv"`
	NumberComplete bool   `json:"numberComplete"`
	NameComplete   bool   `json:"nameComplete"`
	ExpiryComplete bool   `json:"expiryComplete"`
	CVVComplete    bool   `json:"cvvComplete"`
	Valid          bool   `json:"valid"`
}

type ReservationResponse struct {
	ID        string     `json:"id,omitempty"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	TimeLeft  int        `json:"timeLeft"`
}

type CheckoutResponse struct {
	SessionID   uuid.UUID               `json:"sessionId"`
	Step        int                     `json:"step"`
	StepName    string                  `json:"stepName"`
	AddressID   string                  `json:"addressId,omitempty"`
	Shipping    *ShippingMethodResponse `json:"shipping,omitempty"`
	Card        CardResponse            `json:"card"`
	Reservation ReservationResponse     `json:"reservation"`
	CanPay      bool                    `json:"canPay"`
	Expired     bool                    `json:"expired"`
}

type ConfirmationResponse struct {
	ReservationID string     `json:"reservationId"`
	OrderID       string     `json:"orderId,omitempty"`
	Status        string     `json:"status"`
	ConfirmedAt   *time.Time `json:"confirmedAt,omitempty"`
}

type NextResponse struct {
	Outcome      string                `json:"outcome"`
	Confirmation *ConfirmationResponse `json:"confirmation,omitempty"`
	Checkout     *CheckoutResponse     `json:"checkout"`
}

func FromShippingMethod(m checkout.ShippingMethod) ShippingMethodResponse {
	return ShippingMethodResponse(m)
}

func FromShippingMethods(ms []checkout.ShippingMethod) []ShippingMethodResponse {
	out := make([]ShippingMethodResponse, len(ms))
	for i, m := range ms {
		out[i] = FromShippingMethod(m)
	}
	return out
}

func FromCheckoutView(v *queries.CheckoutView) *CheckoutResponse {
	resp := &CheckoutResponse{
		SessionID: v.SessionID,
		Step:      int(v.Step),
		StepName:  v.Step.String(),
		AddressID: v.AddressID,
		Card:      CardResponse(v.Card),
		Reservation: ReservationResponse{
			ID:        v.Reservation.ID,
			Status:    v.Reservation.Status.String(),
			ExpiresAt: v.Reservation.ExpiresAt,
			EndTime:   v.Reservation.EndTime,
			TimeLeft:  v.Reservation.TimeLeft,
		},
		CanPay:  v.CanPay,
		Expired: v.Expired,
	}
	if v.Shipping != nil {
		m := FromShippingMethod(*v.Shipping)
		resp.Shipping = &m
	}
	return resp
}

func FromNextResult(r *commands.NextResult) *NextResponse {
	resp := &NextResponse{
		Outcome:  string(r.Outcome),
		Checkout: FromCheckoutView(r.View),
	}
	if c := r.Confirmation; c != nil {
		resp.Confirmation = &ConfirmationResponse{
			ReservationID: c.ReservationID,
			OrderID:       c.OrderID,
			Status:        c.Status,
			ConfirmedAt:   c.ConfirmedAt,
		}
	}
	return resp
}
