//go:build unit

package session_test

import (
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/usecase/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const waitFor = 2 * time.Second
const pollEvery = 5 * time.Millisecond

func TestScheduler(t *testing.T) {
	t.Run("dispatches once per interval", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		s := session.NewScheduler(clk, time.Second)
		var calls atomic.Int32

		s.Start(func() { calls.Add(1) })
		require.True(t, s.Running())

		clk.Add(time.Second)
		assert.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, pollEvery)
		clk.Add(time.Second)
		assert.Eventually(t, func() bool { return calls.Load() == 2 }, waitFor, pollEvery)

		s.Stop()
	})

	t.Run("restart leaves exactly one ticker", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		s := session.NewScheduler(clk, time.Second)
		var first, second atomic.Int32

		s.Start(func() { first.Add(1) })
		s.Start(func() { second.Add(1) })
		assert.Equal(t, 1, clk.ActiveTickers())

		clk.Add(time.Second)
		assert.Eventually(t, func() bool { return second.Load() == 1 }, waitFor, pollEvery)
		assert.Equal(t, int32(0), first.Load())

		s.Stop()
		assert.Equal(t, 0, clk.ActiveTickers())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		s := session.NewScheduler(clk, time.Second)

		s.Stop()
		s.Start(func() {})
		s.Stop()
		s.Stop()

		assert.False(t, s.Running())
		assert.Equal(t, 0, clk.ActiveTickers())
	})

	t.Run("stop from inside the callback", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		s := session.NewScheduler(clk, time.Second)
		var calls atomic.Int32

		s.Start(func() {
			calls.Add(1)
			s.Stop()
		})

		clk.Add(time.Second)
		assert.Eventually(t, func() bool { return !s.Running() }, waitFor, pollEvery)
		clk.Add(time.Second)
		clk.Add(time.Second)
		assert.Never(t, func() bool { return calls.Load() > 1 }, 50*time.Millisecond, pollEvery)
	})

	t.Run("non-positive interval falls back to one second", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		s := session.NewScheduler(clk, 0)
		var calls atomic.Int32

		s.Start(func() { calls.Add(1) })
		clk.Add(500 * time.Millisecond)
		assert.Never(t, func() bool { return calls.Load() > 0 }, 50*time.Millisecond, pollEvery)
		clk.Add(500 * time.Millisecond)
		assert.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, pollEvery)
		s.Stop()
	})
}
