package reservation

import "time"

// DefaultWindow is how long the cart service holds a reservation.
const DefaultWindow = 30 * time.Minute

// TimeLeft derives the whole seconds remaining until end, clamped at zero.
// It always works from the absolute end time so repeated calls never drift.
func TimeLeft(end *time.Time, now time.Time) int {
	if end == nil {
		return 0
	}
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / time.Second)
}

// EndTime resolves the absolute end of a reservation. The server-provided
// expiry is authoritative; window only applies when the server sent none.
func EndTime(expiry *time.Time, createdAt time.Time, window time.Duration) time.Time {
	if expiry != nil && !expiry.IsZero() {
		return *expiry
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return createdAt.Add(window)
}
