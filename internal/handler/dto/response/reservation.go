package response

import (
	"time"

	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type LifecycleEventResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservationId"`
	Event         string    `json:"event"`
	Status        string    `json:"status"`
	TimeLeft      int       `json:"timeLeft"`
	AddressID     *string   `json:"addressId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func FromLifecycleEvents(events []shared.LifecycleEvent) []LifecycleEventResponse {
	out := make([]LifecycleEventResponse, len(events))
	for i, e := range events {
		out[i] = LifecycleEventResponse{
			ID:            e.ID,
			ReservationID: e.ReservationID,
			Event:         e.Event.String(),
			Status:        e.Status.String(),
			TimeLeft:      e.TimeLeft,
			AddressID:     e.AddressID,
			OccurredAt:    e.OccurredAt,
		}
	}
	return out
}
