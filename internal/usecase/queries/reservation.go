package queries

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

// ReservationQueries reads the reservation journal.
type ReservationQueries interface {
	History(ctx context.Context, userID uuid.UUID, limit int32) ([]shared.LifecycleEvent, error)
	Events(ctx context.Context, userID uuid.UUID, reservationID string) ([]shared.LifecycleEvent, error)
}

type reservationQueriesImpl struct {
	journal shared.JournalReader
}

func NewReservationQueries(journal shared.JournalReader) ReservationQueries {
	return &reservationQueriesImpl{journal: journal}
}

func (q *reservationQueriesImpl) History(ctx context.Context, userID uuid.UUID, limit int32) ([]shared.LifecycleEvent, error) {
	return q.journal.ListByUser(ctx, userID, limit)
}

func (q *reservationQueriesImpl) Events(ctx context.Context, userID uuid.UUID, reservationID string) ([]shared.LifecycleEvent, error) {
	rec, err := q.journal.FindReservation(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if rec.UserID != userID {
		return nil, ErrReservationAccess
	}
	return q.journal.ListByReservation(ctx, reservationID)
}
