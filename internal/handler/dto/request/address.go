package request

import (
	"storefront-checkout/internal/usecase/commands"
)

type CreateAddressRequest struct {
	Recipient  string `json:"recipient" binding:"required,max=200"`
	Line1      string `json:"line1" binding:"required,max=200"`
	Line2      string `json:"line2" binding:"max=200"`
	City       string `json:"city" binding:"required,max=200"`
	Region     string `json:"region" binding:"max=200"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required,len=2"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"isDefault"`
}

func (r CreateAddressRequest) ToCommand() commands.AddressInput {
	return commands.AddressInput{
		Recipient:  r.Recipient,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		Region:     r.Region,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
		IsDefault:  r.IsDefault,
	}
}

// UpdateAddressRequest changes only the fields present in the body.
type UpdateAddressRequest struct {
	Recipient  *string `json:"recipient,omitempty" binding:"omitempty,max=200"`
	Line1      *string `json:"line1,omitempty" binding:"omitempty,max=200"`
	Line2      *string `json:"line2,omitempty" binding:"omitempty,max=200"`
	City       *string `json:"city,omitempty" binding:"omitempty,max=200"`
	Region     *string `json:"region,omitempty" binding:"omitempty,max=200"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty" binding:"omitempty,len=2"`
	Phone      *string `json:"phone,omitempty"`
	IsDefault  *bool   `json:"isDefault,omitempty"`
}

func (r UpdateAddressRequest) ToCommand() commands.AddressPatch {
	return commands.AddressPatch(r)
}
