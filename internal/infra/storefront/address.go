package storefront

import (
	"context"
	"net/http"
	"net/url"

	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// AddressClient exposes the address endpoints under the method names of
// shared.AddressService, which clash with the cart ones on Client.
type AddressClient struct {
	*Client
}

func (c *Client) Addresses() *AddressClient {
	return &AddressClient{Client: c}
}

func (a *AddressClient) List(ctx context.Context) ([]shared.AddressRecord, error) {
	var resp []addressPayload
	if err := a.do(ctx, "address.list", http.MethodGet, "/addresses", nil, &resp); err != nil {
		return nil, err
	}

	out := make([]shared.AddressRecord, 0, len(resp))
	if err := copier.Copy(&out, &resp); err != nil {
		return nil, errs.Wrap(err, "map addresses")
	}
	return out, nil
}

func (a *AddressClient) Add(ctx context.Context, rec shared.AddressRecord) (*shared.AddressRecord, error) {
	var resp addressPayload
	if err := a.do(ctx, "address.add", http.MethodPost, "/addresses", toAddressPayload(rec), &resp); err != nil {
		return nil, err
	}
	return fromAddressPayload(resp)
}

func (a *AddressClient) Update(ctx context.Context, id string, rec shared.AddressRecord) (*shared.AddressRecord, error) {
	var resp addressPayload
	path := "/addresses/" + url.PathEscape(id)
	if err := a.do(ctx, "address.update", http.MethodPut, path, toAddressPayload(rec), &resp); err != nil {
		return nil, err
	}
	return fromAddressPayload(resp)
}

func (a *AddressClient) Delete(ctx context.Context, id string) error {
	return a.do(ctx, "address.delete", http.MethodDelete, "/addresses/"+url.PathEscape(id), nil, nil)
}

func toAddressPayload(rec shared.AddressRecord) addressPayload {
	var p addressPayload
	_ = copier.Copy(&p, &rec)
	p.ID = ""
	return p
}

func fromAddressPayload(p addressPayload) (*shared.AddressRecord, error) {
	var rec shared.AddressRecord
	if err := copier.Copy(&rec, &p); err != nil {
		return nil, errs.Wrap(err, "map address")
	}
	return &rec, nil
}
