package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/pkg/bearer"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultCancelTimeout = 10 * time.Second

// View is what a shopper sees of their checkout.
type View struct {
	SessionID   uuid.UUID
	Step        checkout.Step
	AddressID   string
	ShippingID  string
	Card        card.Card
	Reservation Snapshot
	CanPay      bool
	// Expired is set once a reservation ran out during this checkout. Payment
	// stays disabled until the checkout is started again.
	Expired bool
}

// Session is one shopper's checkout: the step flow plus the reservation
// container. Expiry of the reservation is wired to an automatic cancel.
type Session struct {
	id            uuid.UUID
	userID        uuid.UUID
	container     *Container
	cancelTimeout time.Duration

	mu      sync.Mutex
	flow    *checkout.Flow
	token   string
	expired bool
}

func NewSession(userID uuid.UUID, container *Container, cancelTimeout time.Duration) *Session {
	if cancelTimeout <= 0 {
		cancelTimeout = DefaultCancelTimeout
	}
	s := &Session{
		id:            uuid.New(),
		userID:        userID,
		container:     container,
		cancelTimeout: cancelTimeout,
		flow:          checkout.NewFlow(),
	}
	container.OnExpired(s.handleExpired)
	return s
}

// Start opens a new reservation and restarts the flow at step 1. The bearer
// credential in ctx is kept for the automatic cancel on expiry.
func (s *Session) Start(ctx context.Context, items []shared.CartItem) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.container.Create(ctx, items); err != nil {
		return s.viewLocked(), err
	}

	s.flow.Reset()
	s.expired = false
	s.token, _ = bearer.FromContext(ctx)

	return s.viewLocked(), nil
}

func (s *Session) SelectAddress(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.flow.SelectAddress(id)
	return s.viewLocked(), err
}

func (s *Session) SelectShipping(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.flow.SelectShipping(id)
	return s.viewLocked(), err
}

func (s *Session) UpdateCard(c card.Card) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flow.SetCard(c)
	return s.viewLocked()
}

// Next moves the flow forward. On the payment step it confirms the
// reservation with the selected address instead.
func (s *Session) Next(ctx context.Context) (checkout.Outcome, *shared.Confirmation, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var conf *shared.Confirmation
	outcome, err := s.flow.Next(s.canPayLocked(), func() error {
		addressID := s.flow.AddressID()
		c, err := s.container.Confirm(ctx, &addressID)
		if err != nil {
			return err
		}
		conf = c
		return nil
	})

	return outcome, conf, s.viewLocked(), err
}

func (s *Session) Back() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flow.Back()
	return s.viewLocked()
}

func (s *Session) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.container.Cancel(ctx)
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) ID() uuid.UUID     { return s.id }
func (s *Session) UserID() uuid.UUID { return s.userID }

// Close stops the countdown. The reservation is left to expire upstream.
func (s *Session) Close() {
	s.container.Close()
}

func (s *Session) handleExpired(expired Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A restart or cancel may have replaced the reservation meanwhile.
	current := s.container.Snapshot()
	if current.ID != expired.ID || current.Status != reservation.StatusExpired {
		return
	}
	s.expired = true

	ctx, cancel := context.WithTimeout(bearer.WithToken(context.Background(), s.token), s.cancelTimeout)
	defer cancel()

	if err := s.container.Cancel(ctx); err != nil {
		slog.Warn("failed to cancel expired reservation",
			"user_id", s.userID,
			"reservation_id", expired.ID,
			"error", err)
		return
	}
	slog.Info("expired reservation cancelled",
		"user_id", s.userID,
		"reservation_id", expired.ID)
}

func (s *Session) canPayLocked() bool {
	return !s.expired && s.container.Snapshot().Status == reservation.StatusPending
}

func (s *Session) viewLocked() View {
	snap := s.container.Snapshot()
	return View{
		SessionID:   s.id,
		Step:        s.flow.Step(),
		AddressID:   s.flow.AddressID(),
		ShippingID:  s.flow.ShippingID(),
		Card:        s.flow.Card(),
		Reservation: snap,
		CanPay:      !s.expired && snap.Status == reservation.StatusPending,
		Expired:     s.expired || snap.Status == reservation.StatusExpired,
	}
}
