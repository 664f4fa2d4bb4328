package storefront

import (
	"context"
	"net/http"
	"net/url"

	"storefront-checkout/internal/usecase/shared"
)

func (c *Client) Create(ctx context.Context, items []shared.CartItem) (*shared.CartReservation, error) {
	req := createCartRequest{Items: make([]cartItemPayload, 0, len(items))}
	for _, it := range items {
		req.Items = append(req.Items, cartItemPayload{ID: it.ID, Quantity: it.Quantity})
	}

	var resp cartReservationResponse
	if err := c.do(ctx, "cart.create", http.MethodPost, "/cart", req, &resp); err != nil {
		return nil, err
	}

	return &shared.CartReservation{
		ID:        resp.ID,
		ExpiresAt: resp.ExpiryTimestamp,
		Status:    resp.Status,
	}, nil
}

func (c *Client) Confirm(ctx context.Context, id string, addressID *string) (*shared.Confirmation, error) {
	var resp confirmationResponse
	path := "/cart/" + url.PathEscape(id) + "/confirm"
	if err := c.do(ctx, "cart.confirm", http.MethodPost, path, confirmCartRequest{AddressID: addressID}, &resp); err != nil {
		return nil, err
	}

	reservationID := resp.ID
	if reservationID == "" {
		reservationID = id
	}
	return &shared.Confirmation{
		ReservationID: reservationID,
		OrderID:       resp.OrderID,
		Status:        resp.Status,
		ConfirmedAt:   resp.ConfirmedAt,
	}, nil
}

func (c *Client) Cancel(ctx context.Context, id string) error {
	path := "/cart/" + url.PathEscape(id) + "/cancel"
	return c.do(ctx, "cart.cancel", http.MethodPost, path, nil, nil)
}

func (c *Client) Fetch(ctx context.Context, id string) (*shared.CartDetail, error) {
	var resp cartDetailResponse
	if err := c.do(ctx, "cart.fetch", http.MethodGet, "/cart/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	lines := make([]shared.CartLine, 0, len(resp.Items))
	for _, l := range resp.Items {
		lines = append(lines, shared.CartLine{
			ProductID:  l.ProductID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			PriceCents: l.PriceCents,
		})
	}
	return &shared.CartDetail{
		ID:         resp.ID,
		Status:     resp.Status,
		ExpiresAt:  resp.ExpiryTimestamp,
		Items:      lines,
		TotalCents: resp.TotalCents,
	}, nil
}
