//go:build unit

package metrics_test

import (
	"context"
	"testing"
	"time"

	"storefront-checkout/internal/domain/reservation"
	"storefront-checkout/internal/infra/metrics"
	"storefront-checkout/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := metrics.NewRecorder()
	before := testutil.ToFloat64(metrics.ReservationEventsTotal.WithLabelValues("expired"))

	err := r.Record(context.Background(), shared.LifecycleEvent{Event: reservation.EventExpired})
	require.NoError(t, err)

	after := testutil.ToFloat64(metrics.ReservationEventsTotal.WithLabelValues("expired"))
	assert.Equal(t, before+1, after)
}

func TestCheckout(t *testing.T) {
	c := metrics.NewCheckout()

	before := testutil.ToFloat64(metrics.CardValidationsTotal.WithLabelValues("unknown", "false"))
	c.CardValidated("", false)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CardValidationsTotal.WithLabelValues("unknown", "false")))

	before = testutil.ToFloat64(metrics.CheckoutStepRejectionsTotal.WithLabelValues("payment", "card_invalid"))
	c.StepRejected("payment", "card_invalid")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CheckoutStepRejectionsTotal.WithLabelValues("payment", "card_invalid")))
}

func TestUpstream(t *testing.T) {
	u := metrics.NewUpstream()
	u.ObserveUpstream("cart.create", 0, 10*time.Millisecond)
	u.ObserveUpstream("cart.create", 201, 10*time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(metrics.UpstreamRequestDuration, "storefront_upstream_request_duration_seconds"))
}
