package repository

import (
	"context"

	"storefront-checkout/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertReservation = `
INSERT INTO reservations (id, user_id, status, address_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (id) DO UPDATE
SET status     = EXCLUDED.status,
    address_id = COALESCE(EXCLUDED.address_id, reservations.address_id),
    updated_at = EXCLUDED.updated_at`

const insertReservationEvent = `
INSERT INTO reservation_events (id, user_id, reservation_id, event, status, time_left_seconds, address_id, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const getReservationByID = `
SELECT id, user_id, status, address_id, created_at, updated_at
FROM reservations
WHERE id = $1`

const listEventsByReservation = `
SELECT id, user_id, reservation_id, event, status, time_left_seconds, address_id, occurred_at
FROM reservation_events
WHERE reservation_id = $1
ORDER BY occurred_at, id`

const listEventsByUser = `
SELECT id, user_id, reservation_id, event, status, time_left_seconds, address_id, occurred_at
FROM reservation_events
WHERE user_id = $1
ORDER BY occurred_at DESC, id
LIMIT $2`

type UpsertReservationParams struct {
	ID        string
	UserID    uuid.UUID
	Status    string
	AddressID pgtype.Text
	At        pgtype.Timestamptz
}

type InsertReservationEventParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ReservationID string
	Event         string
	Status        string
	TimeLeft      int32
	AddressID     pgtype.Text
	OccurredAt    pgtype.Timestamptz
}

type ListEventsByUserParams struct {
	UserID uuid.UUID
	Limit  int32
}

type ReservationRow struct {
	ID        string
	UserID    uuid.UUID
	Status    string
	AddressID pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type ReservationEventRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ReservationID string
	Event         string
	Status        string
	TimeLeft      int32
	AddressID     pgtype.Text
	OccurredAt    pgtype.Timestamptz
}

// Queries holds the journal SQL. Each method runs against the DBTX it is
// given so callers decide whether it is part of a transaction.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

func (q *Queries) UpsertReservation(ctx context.Context, dbtx db.DBTX, arg UpsertReservationParams) error {
	_, err := dbtx.Exec(ctx, upsertReservation, arg.ID, arg.UserID, arg.Status, arg.AddressID, arg.At)
	return err
}

func (q *Queries) InsertReservationEvent(ctx context.Context, dbtx db.DBTX, arg InsertReservationEventParams) error {
	_, err := dbtx.Exec(ctx, insertReservationEvent,
		arg.ID, arg.UserID, arg.ReservationID, arg.Event, arg.Status, arg.TimeLeft, arg.AddressID, arg.OccurredAt)
	return err
}

func (q *Queries) GetReservationByID(ctx context.Context, dbtx db.DBTX, id string) (ReservationRow, error) {
	var r ReservationRow
	err := dbtx.QueryRow(ctx, getReservationByID, id).
		Scan(&r.ID, &r.UserID, &r.Status, &r.AddressID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (q *Queries) ListEventsByReservation(ctx context.Context, dbtx db.DBTX, reservationID string) ([]ReservationEventRow, error) {
	rows, err := dbtx.Query(ctx, listEventsByReservation, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (q *Queries) ListEventsByUser(ctx context.Context, dbtx db.DBTX, arg ListEventsByUserParams) ([]ReservationEventRow, error) {
	rows, err := dbtx.Query(ctx, listEventsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows rowScanner) ([]ReservationEventRow, error) {
	var items []ReservationEventRow
	for rows.Next() {
		var e ReservationEventRow
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.ReservationID,
			&e.Event,
			&e.Status,
			&e.TimeLeft,
			&e.AddressID,
			&e.OccurredAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
