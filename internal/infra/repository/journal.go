package repository

//go:generate mockgen -source=journal.go -destination=../../testutil/mock/repository/journal.go -package=repositorymock

import (
	"context"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/infra/db"
	"storefront-checkout/internal/infra/pgconv"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DefaultListLimit int32 = 50

type JournalQueries interface {
	UpsertReservation(ctx context.Context, dbtx db.DBTX, arg UpsertReservationParams) error
	InsertReservationEvent(ctx context.Context, dbtx db.DBTX, arg InsertReservationEventParams) error
	GetReservationByID(ctx context.Context, dbtx db.DBTX, id string) (ReservationRow, error)
	ListEventsByReservation(ctx context.Context, dbtx db.DBTX, reservationID string) ([]ReservationEventRow, error)
	ListEventsByUser(ctx context.Context, dbtx db.DBTX, arg ListEventsByUserParams) ([]ReservationEventRow, error)
}

// Journal is the Postgres reservation journal. Writes go through
// LifecycleRecorder, reads through shared.JournalReader.
type Journal struct {
	queries JournalQueries
	pool    db.Beginner
	db      db.DBTX
}

func NewJournal(pool *pgxpool.Pool) *Journal {
	return NewJournalWithQueries(NewQueries(), pool, pool)
}

func NewJournalWithQueries(queries JournalQueries, beginner db.Beginner, dbtx db.DBTX) *Journal {
	return &Journal{
		queries: queries,
		pool:    beginner,
		db:      dbtx,
	}
}

// Record stores the event and moves the reservation row to the event's
// status in one transaction.
func (j *Journal) Record(ctx context.Context, e shared.LifecycleEvent) error {
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	at := pgconv.Timestamptz(e.OccurredAt)
	addressID := pgconv.TextFromPtr(e.AddressID)

	_, err := db.WithDefaultRetry(ctx, j.pool, func(tx db.DBTX) (struct{}, error) {
		if err := j.queries.UpsertReservation(ctx, tx, UpsertReservationParams{
			ID:        e.ReservationID,
			UserID:    e.UserID,
			Status:    e.Status.String(),
			AddressID: addressID,
			At:        at,
		}); err != nil {
			return struct{}{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert reservation", err)
		}

		if err := j.queries.InsertReservationEvent(ctx, tx, InsertReservationEventParams{
			ID:            id,
			UserID:        e.UserID,
			ReservationID: e.ReservationID,
			Event:         e.Event.String(),
			Status:        e.Status.String(),
			TimeLeft:      int32(max(e.TimeLeft, 0)), // #nosec G115 -- bounded by the reservation window
			AddressID:     addressID,
			OccurredAt:    at,
		}); err != nil {
			return struct{}{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert reservation event", err)
		}
		return struct{}{}, nil
	})
	return err
}

func (j *Journal) FindReservation(ctx context.Context, id string) (*shared.ReservationRecord, error) {
	row, err := j.queries.GetReservationByID(ctx, j.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}

	return &shared.ReservationRecord{
		ID:        row.ID,
		UserID:    row.UserID,
		Status:    reservation.Status(row.Status),
		AddressID: pgconv.StringPtrFromPgtype(row.AddressID),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (j *Journal) ListByReservation(ctx context.Context, reservationID string) ([]shared.LifecycleEvent, error) {
	rows, err := j.queries.ListEventsByReservation(ctx, j.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list reservation events", err)
	}
	return toLifecycleEvents(rows), nil
}

func (j *Journal) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]shared.LifecycleEvent, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := j.queries.ListEventsByUser(ctx, j.db, ListEventsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list user reservation events", err)
	}
	return toLifecycleEvents(rows), nil
}

func toLifecycleEvents(rows []ReservationEventRow) []shared.LifecycleEvent {
	result := make([]shared.LifecycleEvent, len(rows))
	for i, row := range rows {
		result[i] = shared.LifecycleEvent{
			ID:            row.ID,
			UserID:        row.UserID,
			ReservationID: row.ReservationID,
			Event:         reservation.Event(row.Event),
			Status:        reservation.Status(row.Status),
			TimeLeft:      int(row.TimeLeft),
			AddressID:     pgconv.StringPtrFromPgtype(row.AddressID),
			OccurredAt:    pgconv.TimeFromPgtype(row.OccurredAt),
		}
	}
	return result
}
