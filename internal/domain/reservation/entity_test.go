//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTimeLeft(t *testing.T) {
	end := baseTime.Add(120 * time.Second)

	testCases := []struct {
		name   string
		end    *time.Time
		now    time.Time
		expect int
	}{
		{name: "no expiry", end: nil, now: baseTime, expect: 0},
		{name: "full window", end: &end, now: baseTime, expect: 120},
		{name: "floors partial seconds", end: &end, now: baseTime.Add(500 * time.Millisecond), expect: 119},
		{name: "last second", end: &end, now: baseTime.Add(119 * time.Second), expect: 1},
		{name: "just under a second left", end: &end, now: baseTime.Add(119*time.Second + 999*time.Millisecond), expect: 0},
		{name: "exactly at end", end: &end, now: end, expect: 0},
		{name: "past end clamps", end: &end, now: end.Add(time.Hour), expect: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, reservation.TimeLeft(tc.end, tc.now))
		})
	}
}

func TestTimeLeft_NoDrift(t *testing.T) {
	end := baseTime.Add(90 * time.Second)
	for s := 0; s <= 90; s++ {
		now := baseTime.Add(time.Duration(s) * time.Second)
		got := reservation.TimeLeft(&end, now)
		require.Equal(t, 90-s, got)
		require.GreaterOrEqual(t, got, 0)
	}
}

func TestEndTime(t *testing.T) {
	expiry := baseTime.Add(10 * time.Minute)

	assert.Equal(t, expiry, reservation.EndTime(&expiry, baseTime, 30*time.Minute), "server expiry wins")
	assert.Equal(t, baseTime.Add(30*time.Minute), reservation.EndTime(nil, baseTime, 30*time.Minute))
	assert.Equal(t, baseTime.Add(reservation.DefaultWindow), reservation.EndTime(nil, baseTime, 0))
	zero := time.Time{}
	assert.Equal(t, baseTime.Add(5*time.Minute), reservation.EndTime(&zero, baseTime, 5*time.Minute))
}

func TestReservation(t *testing.T) {
	expiry := baseTime.Add(2 * time.Minute)

	t.Run("new pending reservation", func(t *testing.T) {
		r, err := reservation.NewPending("cart-1", &expiry, baseTime, time.Minute)
		require.NoError(t, err)

		assert.Equal(t, "cart-1", r.ID())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, expiry, r.EndTime())
		assert.Equal(t, 120, r.TimeLeft(baseTime))
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := reservation.NewPending("  ", &expiry, baseTime, time.Minute)
		assert.ErrorIs(t, err, reservation.ErrInvalidID)
	})

	t.Run("refresh expires only at zero", func(t *testing.T) {
		r, err := reservation.NewPending("cart-1", &expiry, baseTime, time.Minute)
		require.NoError(t, err)

		assert.False(t, r.Refresh(baseTime.Add(119*time.Second)))
		assert.Equal(t, reservation.StatusPending, r.Status())

		assert.True(t, r.Refresh(baseTime.Add(120*time.Second)))
		assert.Equal(t, reservation.StatusExpired, r.Status())

		assert.False(t, r.Refresh(baseTime.Add(121*time.Second)), "already expired")
	})

	t.Run("transitions", func(t *testing.T) {
		testCases := []struct {
			name    string
			prepare func(r *reservation.Reservation)
			act     func(r *reservation.Reservation) error
			expect  reservation.Status
			errIs   error
		}{
			{
				name:   "pending to confirmed",
				act:    (*reservation.Reservation).Confirm,
				expect: reservation.StatusConfirmed,
			},
			{
				name:   "pending to cancelled",
				act:    (*reservation.Reservation).Cancel,
				expect: reservation.StatusCancelled,
			},
			{
				name:    "expired to cancelled",
				prepare: func(r *reservation.Reservation) { r.Refresh(expiry) },
				act:     (*reservation.Reservation).Cancel,
				expect:  reservation.StatusCancelled,
			},
			{
				name:    "expired cannot confirm",
				prepare: func(r *reservation.Reservation) { r.Refresh(expiry) },
				act:     (*reservation.Reservation).Confirm,
				expect:  reservation.StatusExpired,
				errIs:   reservation.ErrInvalidTransition,
			},
			{
				name:    "confirmed cannot cancel",
				prepare: func(r *reservation.Reservation) { _ = r.Confirm() },
				act:     (*reservation.Reservation).Cancel,
				expect:  reservation.StatusConfirmed,
				errIs:   reservation.ErrInvalidTransition,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := reservation.NewPending("cart-1", &expiry, baseTime, time.Minute)
				require.NoError(t, err)
				if tc.prepare != nil {
					tc.prepare(r)
				}

				err = tc.act(r)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
				} else {
					require.NoError(t, err)
				}
				assert.Equal(t, tc.expect, r.Status())
			})
		}
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusExpired.IsTerminal())
	assert.True(t, reservation.StatusConfirmed.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusIdle.IsTerminal())
	assert.False(t, reservation.Status("unknown").IsValid())
}
