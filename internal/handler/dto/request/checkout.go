package request

import (
	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/usecase/shared"
)

type CartItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type StartCheckoutRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r StartCheckoutRequest) CartItems() []shared.CartItem {
	items := make([]shared.CartItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = shared.CartItem(it)
	}
	return items
}

type SelectAddressRequest struct {
	AddressID string `json:"addressId" binding:"required"`
}

type SelectShippingRequest struct {
	ShippingID string `json:"shippingId" binding:"required"`
}

// CardRequest is the raw payment form. Fields may be partial while the
// shopper is typing.
type CardRequest struct {
	Number string `json:"number" binding:"max=64"`
	Name   string `json:"name" binding:"max=100"`
	Expiry string `json:"expiry" binding:"max=16"`
	CVV    string `json:"cvv" binding:"max=8"`
}

func (r CardRequest) ToInput() shared.CardInput {
	return shared.CardInput(r)
}

type NormalizeCardRequest struct {
	CardRequest
	Focus string `json:"focus" binding:"omitempty,oneof=number name expiry cvv"`
}

func (r NormalizeCardRequest) FocusField() card.Field {
	return card.Field(r.Focus)
}
