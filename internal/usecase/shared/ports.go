package shared

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/shared/ports.go -package=sharedmock

import (
	"context"

	"storefront-checkout/internal/domain/catalog"

	"github.com/google/uuid"
)

// CartService is the storefront cart/purchase API. Calls authorize with the
// bearer credential carried by ctx.
type CartService interface {
	Create(ctx context.Context, items []CartItem) (*CartReservation, error)
	Confirm(ctx context.Context, id string, addressID *string) (*Confirmation, error)
	Cancel(ctx context.Context, id string) error
	Fetch(ctx context.Context, id string) (*CartDetail, error)
}

type AddressService interface {
	List(ctx context.Context) ([]AddressRecord, error)
	Add(ctx context.Context, rec AddressRecord) (*AddressRecord, error)
	Update(ctx context.Context, id string, rec AddressRecord) (*AddressRecord, error)
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	Register(ctx context.Context, name, email, password string) (*AuthUser, error)
	Verify(ctx context.Context, email, code string) (*AuthSession, error)
	Logout(ctx context.Context) error
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

// ProductCache holds the product list between catalog calls. A miss is
// reported with ok == false and a nil error.
type ProductCache interface {
	GetProducts(ctx context.Context) (products []catalog.Product, ok bool, err error)
	SetProducts(ctx context.Context, products []catalog.Product) error
}

// LifecycleRecorder receives every reservation transition. Failures are
// logged by the caller and never abort the transition.
type LifecycleRecorder interface {
	Record(ctx context.Context, event LifecycleEvent) error
}

// JournalReader reads the reservation journal written through the
// LifecycleRecorder.
type JournalReader interface {
	FindReservation(ctx context.Context, id string) (*ReservationRecord, error)
	ListByReservation(ctx context.Context, reservationID string) ([]LifecycleEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]LifecycleEvent, error)
}

// CheckoutObserver receives checkout outcomes worth counting.
type CheckoutObserver interface {
	StepRejected(step, reason string)
	CardValidated(brand string, valid bool)
}
