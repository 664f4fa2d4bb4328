package reservation

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusExpired   Status = "expired"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusIdle, StatusPending, StatusExpired, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the reservation can no longer count down.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusExpired, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

type Event string

const (
	EventCreated   Event = "created"
	EventExpired   Event = "expired"
	EventConfirmed Event = "confirmed"
	EventCancelled Event = "cancelled"
)

func (e Event) String() string {
	return string(e)
}
