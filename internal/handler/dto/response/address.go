package response

import (
	"storefront-checkout/internal/usecase/shared"
)

type AddressResponse struct {
	ID         string `json:"id"`
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

func FromAddress(a shared.AddressRecord) AddressResponse {
	return AddressResponse(a)
}

func FromAddresses(list []shared.AddressRecord) []AddressResponse {
	out := make([]AddressResponse, len(list))
	for i, a := range list {
		out[i] = FromAddress(a)
	}
	return out
}
