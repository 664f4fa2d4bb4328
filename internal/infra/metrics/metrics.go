package metrics

import (
	"context"
	"strconv"
	"time"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_reservation_events_total",
		Help: "Reservation lifecycle transitions by event",
	}, []string{"event"})

	ReservationTimeLeftSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_reservation_time_left_seconds",
		Help:    "Seconds left on the reservation when it left the pending state",
		Buckets: []float64{0, 30, 60, 120, 300, 600, 900, 1200, 1800},
	}, []string{"event"})

	CheckoutStepRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_step_rejections_total",
		Help: "Forward moves refused by the checkout flow, by step and reason",
	}, []string{"step", "reason"})

	CardValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_card_validations_total",
		Help: "Card normalizations by detected brand and validity",
	}, []string{"brand", "valid"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_upstream_request_duration_seconds",
		Help:    "Latency of storefront API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

// Recorder counts reservation transitions. It never fails.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(_ context.Context, e shared.LifecycleEvent) error {
	ReservationEventsTotal.WithLabelValues(e.Event.String()).Inc()
	if e.Event != reservation.EventCreated {
		ReservationTimeLeftSeconds.WithLabelValues(e.Event.String()).Observe(float64(e.TimeLeft))
	}
	return nil
}

// Upstream observes storefront API latency.
type Upstream struct{}

func NewUpstream() *Upstream {
	return &Upstream{}
}

func (u *Upstream) ObserveUpstream(operation string, statusCode int, elapsed time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	UpstreamRequestDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

// Checkout counts step rejections and card validations.
type Checkout struct{}

func NewCheckout() *Checkout {
	return &Checkout{}
}

func (c *Checkout) StepRejected(step, reason string) {
	CheckoutStepRejectionsTotal.WithLabelValues(step, reason).Inc()
}

func (c *Checkout) CardValidated(brand string, valid bool) {
	if brand == "" {
		brand = "unknown"
	}
	CardValidationsTotal.WithLabelValues(brand, strconv.FormatBool(valid)).Inc()
}
