package commands

//go:generate mockgen -source=checkout.go -destination=../../testutil/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAddressNotFound = errs.New("address not found")

type NextResult struct {
	Outcome      checkout.Outcome
	Confirmation *shared.Confirmation
	View         *queries.CheckoutView
}

type CheckoutCommands interface {
	Start(ctx context.Context, userID uuid.UUID, items []shared.CartItem) (*queries.CheckoutView, error)
	SelectAddress(ctx context.Context, userID uuid.UUID, addressID string) (*queries.CheckoutView, error)
	SelectShipping(ctx context.Context, userID uuid.UUID, shippingID string) (*queries.CheckoutView, error)
	UpdateCard(ctx context.Context, userID uuid.UUID, in shared.CardInput) (*queries.CheckoutView, error)
	Next(ctx context.Context, userID uuid.UUID) (*NextResult, error)
	Back(ctx context.Context, userID uuid.UUID) (*queries.CheckoutView, error)
	Cancel(ctx context.Context, userID uuid.UUID) error
}

type checkoutCommandsImpl struct {
	sessions  *session.Registry
	addresses shared.AddressService
	observer  shared.CheckoutObserver
}

func NewCheckoutCommands(
	sessions *session.Registry,
	addresses shared.AddressService,
	observer shared.CheckoutObserver,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		sessions:  sessions,
		addresses: addresses,
		observer:  observer,
	}
}

// Start opens a reservation for the cart and (re)starts the flow at the
// address step. A shopper whose reservation expired restarts here.
func (c *checkoutCommandsImpl) Start(ctx context.Context, userID uuid.UUID, items []shared.CartItem) (*queries.CheckoutView, error) {
	s := c.sessions.GetOrCreate(userID)

	view, err := s.Start(ctx, items)
	if err != nil {
		if view.Reservation.Status == reservation.StatusIdle {
			c.sessions.Remove(userID)
		}
		return nil, err
	}

	slog.Info("checkout started",
		"user_id", userID,
		"session_id", view.SessionID,
		"reservation_id", view.Reservation.ID,
		"time_left", view.Reservation.TimeLeft)

	return queries.NewCheckoutView(view), nil
}

func (c *checkoutCommandsImpl) SelectAddress(ctx context.Context, userID uuid.UUID, addressID string) (*queries.CheckoutView, error) {
	s, err := c.session(userID)
	if err != nil {
		return nil, err
	}

	list, err := c.addresses.List(ctx)
	if err != nil {
		return nil, err
	}
	if !containsAddress(list, addressID) {
		return nil, ErrAddressNotFound
	}

	view, err := s.SelectAddress(addressID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return queries.NewCheckoutView(view), nil
}

func (c *checkoutCommandsImpl) SelectShipping(_ context.Context, userID uuid.UUID, shippingID string) (*queries.CheckoutView, error) {
	s, err := c.session(userID)
	if err != nil {
		return nil, err
	}

	view, err := s.SelectShipping(shippingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return queries.NewCheckoutView(view), nil
}

func (c *checkoutCommandsImpl) UpdateCard(_ context.Context, userID uuid.UUID, in shared.CardInput) (*queries.CheckoutView, error) {
	s, err := c.session(userID)
	if err != nil {
		return nil, err
	}

	view := s.UpdateCard(card.NewCard(in.Number, in.Name, in.Expiry, in.CVV))
	return queries.NewCheckoutView(view), nil
}

// Next advances the flow. On the payment step it confirms the reservation,
// after which the checkout is finished and the session is dropped.
func (c *checkoutCommandsImpl) Next(ctx context.Context, userID uuid.UUID) (*NextResult, error) {
	s, err := c.session(userID)
	if err != nil {
		return nil, err
	}

	outcome, conf, view, err := s.Next(ctx)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			c.observer.StepRejected(view.Step.String(), reason)
			if errors.Is(err, checkout.ErrPaymentUnavailable) {
				return nil, errs.Mark(err, errs.ErrReservationExpired)
			}
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, err
	}

	if outcome == checkout.OutcomeConfirmed {
		c.sessions.Remove(userID)
		slog.Info("checkout confirmed",
			"user_id", userID,
			"reservation_id", conf.ReservationID,
			"order_id", conf.OrderID)
	}

	return &NextResult{
		Outcome:      outcome,
		Confirmation: conf,
		View:         queries.NewCheckoutView(view),
	}, nil
}

func (c *checkoutCommandsImpl) Back(_ context.Context, userID uuid.UUID) (*queries.CheckoutView, error) {
	s, err := c.session(userID)
	if err != nil {
		return nil, err
	}
	return queries.NewCheckoutView(s.Back()), nil
}

func (c *checkoutCommandsImpl) Cancel(ctx context.Context, userID uuid.UUID) error {
	s, err := c.session(userID)
	if err != nil {
		return err
	}

	if err := s.Cancel(ctx); err != nil {
		return err
	}
	c.sessions.Remove(userID)
	return nil
}

func (c *checkoutCommandsImpl) session(userID uuid.UUID) (*session.Session, error) {
	s, ok := c.sessions.Get(userID)
	if !ok {
		return nil, errs.ErrCheckoutNotFound
	}
	return s, nil
}

func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, checkout.ErrStepInvalid):
		return "incomplete", true
	case errors.Is(err, checkout.ErrCardInvalid):
		return "card_invalid", true
	case errors.Is(err, checkout.ErrPaymentUnavailable):
		return "payment_unavailable", true
	default:
		return "", false
	}
}

func containsAddress(list []shared.AddressRecord, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
