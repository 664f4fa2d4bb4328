//go:build unit

package builder

import (
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/usecase/shared"
)

type AddressBuilder struct {
	ID         string
	Recipient  string
	Line1      string
	City       string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

func NewAddressBuilder() *AddressBuilder {
	return &AddressBuilder{
		ID:         "addr-1",
		Recipient:  "Jane Shopper",
		Line1:      "1-2-3 Shibuya",
		City:       "Tokyo",
		PostalCode: "150-0002",
		Country:    "JP",
		Phone:      "+81 3 1234 5678",
		IsDefault:  true,
	}
}

func (a *AddressBuilder) With(mutate func(*AddressBuilder)) *AddressBuilder {
	mutate(a)
	return a
}

func (a *AddressBuilder) BuildRecord() shared.AddressRecord {
	return shared.AddressRecord{
		ID:         a.ID,
		Recipient:  a.Recipient,
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
	}
}

func (a *AddressBuilder) BuildCreateRequestDTO() reqdto.CreateAddressRequest {
	return reqdto.CreateAddressRequest{
		Recipient:  a.Recipient,
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
	}
}
