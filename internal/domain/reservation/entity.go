package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidID         = errors.New("reservation id is required")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// Reservation is a time-boxed hold on cart contents issued by the cart
// service. The id is opaque and owned by that service.
type Reservation struct {
	id        string
	expiresAt *time.Time
	endTime   time.Time
	status    Status
	createdAt time.Time
}

// NewPending builds the reservation returned by a successful cart creation.
func NewPending(id string, expiresAt *time.Time, createdAt time.Time, window time.Duration) (*Reservation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidID
	}

	var expiry *time.Time
	if expiresAt != nil && !expiresAt.IsZero() {
		t := *expiresAt
		expiry = &t
	}

	return &Reservation{
		id:        id,
		expiresAt: expiry,
		endTime:   EndTime(expiry, createdAt, window),
		status:    StatusPending,
		createdAt: createdAt,
	}, nil
}

func (r *Reservation) TimeLeft(now time.Time) int {
	end := r.endTime
	return TimeLeft(&end, now)
}

// Refresh expires a pending reservation whose countdown reached zero and
// reports whether this call performed the transition.
func (r *Reservation) Refresh(now time.Time) bool {
	if r.status != StatusPending {
		return false
	}
	if r.TimeLeft(now) > 0 {
		return false
	}
	r.status = StatusExpired
	return true
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel is allowed from pending and from expired; the latter is the
// automatic release after the countdown ran out.
func (r *Reservation) Cancel() error {
	if r.status != StatusPending && r.status != StatusExpired {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsPending() bool       { return r.status == StatusPending }
func (r *Reservation) IsExpired() bool       { return r.status == StatusExpired }
func (r *Reservation) ID() string            { return r.id }
func (r *Reservation) ExpiresAt() *time.Time { return r.expiresAt }
func (r *Reservation) EndTime() time.Time    { return r.endTime }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
