package commands

//go:generate mockgen -source=address.go -destination=../../testutil/mock/commands/address.go -package=commandsmock

import (
	"context"

	"storefront-checkout/internal/domain/address"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/pkg/patch"
	"storefront-checkout/internal/usecase/shared"
)

type AddressInput struct {
	Recipient  string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

// AddressPatch changes only the fields that are set.
type AddressPatch struct {
	Recipient  *string
	Line1      *string
	Line2      *string
	City       *string
	Region     *string
	PostalCode *string
	Country    *string
	Phone      *string
	IsDefault  *bool
}

type AddressCommands interface {
	Add(ctx context.Context, in AddressInput) (*shared.AddressRecord, error)
	Update(ctx context.Context, id string, p AddressPatch) (*shared.AddressRecord, error)
	Delete(ctx context.Context, id string) error
}

type addressCommandsImpl struct {
	addresses shared.AddressService
}

func NewAddressCommands(addresses shared.AddressService) AddressCommands {
	return &addressCommandsImpl{addresses: addresses}
}

func (a *addressCommandsImpl) Add(ctx context.Context, in AddressInput) (*shared.AddressRecord, error) {
	addr, err := address.NewAddress(address.Input(in))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return a.addresses.Add(ctx, toAddressRecord(addr))
}

func (a *addressCommandsImpl) Update(ctx context.Context, id string, p AddressPatch) (*shared.AddressRecord, error) {
	current, err := a.find(ctx, id)
	if err != nil {
		return nil, err
	}

	addr, err := address.NewAddress(address.Input{
		Recipient:  patch.Coalesce(p.Recipient, current.Recipient),
		Line1:      patch.Coalesce(p.Line1, current.Line1),
		Line2:      patch.Coalesce(p.Line2, current.Line2),
		City:       patch.Coalesce(p.City, current.City),
		Region:     patch.Coalesce(p.Region, current.Region),
		PostalCode: patch.Coalesce(p.PostalCode, current.PostalCode),
		Country:    patch.Coalesce(p.Country, current.Country),
		Phone:      patch.Coalesce(p.Phone, current.Phone),
		IsDefault:  patch.Coalesce(p.IsDefault, current.IsDefault),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return a.addresses.Update(ctx, id, toAddressRecord(addr.WithID(id)))
}

func (a *addressCommandsImpl) Delete(ctx context.Context, id string) error {
	if _, err := a.find(ctx, id); err != nil {
		return err
	}
	return a.addresses.Delete(ctx, id)
}

func (a *addressCommandsImpl) find(ctx context.Context, id string) (*shared.AddressRecord, error) {
	list, err := a.addresses.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrAddressNotFound
}

func toAddressRecord(a *address.Address) shared.AddressRecord {
	return shared.AddressRecord{
		ID:         a.ID(),
		Recipient:  a.Recipient(),
		Line1:      a.Line1(),
		Line2:      a.Line2(),
		City:       a.City(),
		Region:     a.Region(),
		PostalCode: a.PostalCode().String(),
		Country:    a.Country().String(),
		Phone:      a.Phone().String(),
		IsDefault:  a.IsDefault(),
	}
}
