package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errs.New("cart has no items")
	ErrInvalidCartItem = errs.New("cart item needs an id and a positive quantity")
)

const recordTimeout = 5 * time.Second

// Snapshot is a point-in-time view of the container. A pending reservation
// whose countdown reached zero is reported as expired even before the next
// tick records the transition.
type Snapshot struct {
	ID        string
	Status    reservation.Status
	ExpiresAt *time.Time
	EndTime   *time.Time
	TimeLeft  int
}

type ContainerConfig struct {
	Window       time.Duration
	TickInterval time.Duration
}

// Container owns one shopper's reservation and the scheduler that counts it
// down. Only Tick moves a reservation to expired; expiry subscribers are
// called from the tick goroutine with no container lock held.
type Container struct {
	userID    uuid.UUID
	cart      shared.CartService
	recorder  shared.LifecycleRecorder
	clock     clock.Clock
	window    time.Duration
	scheduler *Scheduler

	mu          sync.Mutex
	current     *reservation.Reservation
	subscribers []func(Snapshot)
}

func NewContainer(
	userID uuid.UUID,
	cart shared.CartService,
	recorder shared.LifecycleRecorder,
	clk clock.Clock,
	cfg ContainerConfig,
) *Container {
	return &Container{
		userID:    userID,
		cart:      cart,
		recorder:  recorder,
		clock:     clk,
		window:    cfg.Window,
		scheduler: NewScheduler(clk, cfg.TickInterval),
	}
}

// Create opens a reservation for items and starts the countdown. On failure
// the previous state is kept and the cart service error is returned as is.
func (c *Container) Create(ctx context.Context, items []shared.CartItem) (Snapshot, error) {
	if err := validateItems(items); err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.cart.Create(ctx, items)
	if err != nil {
		return c.snapshotLocked(), errs.Wrap(err, "create cart reservation")
	}

	r, err := reservation.NewPending(res.ID, res.ExpiresAt, c.clock.Now(), c.window)
	if err != nil {
		return c.snapshotLocked(), errs.Mark(err, errs.ErrUpstreamOperationFailed)
	}

	if c.current != nil && c.current.IsPending() {
		slog.Info("replacing active reservation",
			"user_id", c.userID,
			"previous_reservation_id", c.current.ID(),
			"reservation_id", r.ID())
	}

	c.scheduler.Stop()
	c.current = r
	c.record(ctx, reservation.EventCreated, nil)
	c.scheduler.Start(c.Tick)

	return c.snapshotLocked(), nil
}

// Confirm completes the pending reservation and resets the container.
func (c *Container) Confirm(ctx context.Context, addressID *string) (*shared.Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil, errs.ErrNoActiveReservation
	}
	switch c.snapshotLocked().Status {
	case reservation.StatusPending:
	case reservation.StatusExpired:
		return nil, errs.ErrReservationExpired
	default:
		return nil, errs.ErrNoActiveReservation
	}

	conf, err := c.cart.Confirm(ctx, c.current.ID(), addressID)
	if err != nil {
		return nil, errs.Wrap(err, "confirm cart reservation")
	}
	if err := c.current.Confirm(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	c.scheduler.Stop()
	c.record(ctx, reservation.EventConfirmed, addressID)
	c.current = nil

	return conf, nil
}

// Cancel releases the reservation, pending or already expired, and resets
// the container.
func (c *Container) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return errs.ErrNoActiveReservation
	}

	if err := c.cart.Cancel(ctx, c.current.ID()); err != nil {
		return errs.Wrap(err, "cancel cart reservation")
	}
	if err := c.current.Cancel(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	c.scheduler.Stop()
	c.record(ctx, reservation.EventCancelled, nil)
	c.current = nil

	return nil
}

// Tick recomputes the countdown. When it reaches zero the reservation is
// expired, the scheduler stopped and every expiry subscriber notified.
func (c *Container) Tick() {
	c.mu.Lock()
	if c.current == nil || !c.current.Refresh(c.clock.Now()) {
		c.mu.Unlock()
		return
	}

	c.scheduler.Stop()
	c.record(context.Background(), reservation.EventExpired, nil)
	snap := c.snapshotLocked()
	subscribers := make([]func(Snapshot), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

// OnExpired registers fn to be called once per reservation that runs out.
func (c *Container) OnExpired(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Container) Ticking() bool {
	return c.scheduler.Running()
}

// Close stops the countdown without touching the reservation upstream.
func (c *Container) Close() {
	c.scheduler.Stop()
}

func (c *Container) snapshotLocked() Snapshot {
	if c.current == nil {
		return Snapshot{Status: reservation.StatusIdle}
	}

	timeLeft := c.current.TimeLeft(c.clock.Now())
	status := c.current.Status()
	if status == reservation.StatusPending && timeLeft == 0 {
		status = reservation.StatusExpired
	}
	end := c.current.EndTime()

	return Snapshot{
		ID:        c.current.ID(),
		Status:    status,
		ExpiresAt: c.current.ExpiresAt(),
		EndTime:   &end,
		TimeLeft:  timeLeft,
	}
}

func (c *Container) record(ctx context.Context, event reservation.Event, addressID *string) {
	if c.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	now := c.clock.Now()
	err := c.recorder.Record(ctx, shared.LifecycleEvent{
		ID:            uuid.New(),
		UserID:        c.userID,
		ReservationID: c.current.ID(),
		Event:         event,
		Status:        c.current.Status(),
		TimeLeft:      c.current.TimeLeft(now),
		AddressID:     addressID,
		OccurredAt:    now,
	})
	if err != nil {
		slog.Warn("failed to record reservation lifecycle event",
			"user_id", c.userID,
			"reservation_id", c.current.ID(),
			"event", event,
			"error", err)
	}
}

func validateItems(items []shared.CartItem) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	for _, it := range items {
		if it.ID == "" || it.Quantity <= 0 {
			return ErrInvalidCartItem
		}
	}
	return nil
}
