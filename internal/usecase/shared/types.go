package shared

import (
	"time"

	"storefront-checkout/internal/domain/reservation"

	"github.com/google/uuid"
)

// CartItem is the simplified line sent to the cart service when a
// reservation is opened.
type CartItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartReservation is the cart service's answer to a create call.
type CartReservation struct {
	ID        string
	ExpiresAt *time.Time
	Status    string
}

type Confirmation struct {
	ReservationID string
	OrderID       string
	Status        string
	ConfirmedAt   *time.Time
}

type CartLine struct {
	ProductID  string
	Name       string
	Quantity   int
	PriceCents int64
}

type CartDetail struct {
	ID         string
	Status     string
	ExpiresAt  *time.Time
	Items      []CartLine
	TotalCents int64
}

type AddressRecord struct {
	ID         string
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

type AuthUser struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	Verified bool
}

// AuthSession is a bearer credential issued by the auth service.
type AuthSession struct {
	Token     string
	ExpiresAt *time.Time
	User      AuthUser
}

// LifecycleEvent is one reservation transition as seen by this service.
type LifecycleEvent struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ReservationID string
	Event         reservation.Event
	Status        reservation.Status
	TimeLeft      int
	AddressID     *string
	OccurredAt    time.Time
}

// ReservationRecord is the latest journaled state of one reservation.
type ReservationRecord struct {
	ID        string
	UserID    uuid.UUID
	Status    reservation.Status
	AddressID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardInput is the raw payment form as typed by the shopper.
type CardInput struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}
