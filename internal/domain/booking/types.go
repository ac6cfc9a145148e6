package booking

type Status string

const (
	StatusHold      Status = "HOLD"
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// LiveStatuses are the statuses whose items occupy inventory.
var LiveStatuses = []Status{StatusHold, StatusPending, StatusConfirmed}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHold, StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Expires reports whether the status is bounded by expiresAt.
func (s Status) Expires() bool {
	return s == StatusHold || s == StatusPending
}

func (s Status) BlocksInventory() bool {
	return s == StatusHold || s == StatusPending || s == StatusConfirmed
}

func (s Status) Payable() bool {
	return s == StatusHold || s == StatusPending
}

func (s Status) Cancellable() bool {
	return s == StatusHold || s == StatusPending || s == StatusConfirmed
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
