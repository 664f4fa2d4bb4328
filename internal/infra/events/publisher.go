package events

import (
	"context"
	"encoding/json"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type lifecycleMessage struct {
	EventID       string    `json:"eventId"`
	ReservationID string    `json:"reservationId"`
	UserID        string    `json:"userId"`
	Event         string    `json:"event"`
	Status        string    `json:"status"`
	TimeLeft      int       `json:"timeLeftSeconds"`
	AddressID     *string   `json:"addressId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher emits reservation lifecycle events keyed by reservation id, so
// every transition of one reservation lands on the same partition.
type Publisher struct {
	w MessageWriter
}

// NewPublisher returns a publisher that does nothing when no brokers are
// configured.
func NewPublisher(cfg config.KafkaConfig) *Publisher {
	if len(cfg.Brokers) == 0 {
		return &Publisher{}
	}
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.LifecycleTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
	})
}

func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) Enabled() bool {
	return p.w != nil
}

func (p *Publisher) Record(ctx context.Context, e shared.LifecycleEvent) error {
	if p.w == nil {
		return nil
	}

	value, err := json.Marshal(lifecycleMessage{
		EventID:       e.ID.String(),
		ReservationID: e.ReservationID,
		UserID:        e.UserID.String(),
		Event:         e.Event.String(),
		Status:        e.Status.String(),
		TimeLeft:      e.TimeLeft,
		AddressID:     e.AddressID,
		OccurredAt:    e.OccurredAt,
	})
	if err != nil {
		return errs.Wrap(err, "encode lifecycle event")
	}

	msg := kafka.Message{
		Key:   []byte(e.ReservationID),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(e.Event.String())},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "publish lifecycle event")
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.w == nil {
		return nil
	}
	return p.w.Close()
}
