package booking

// Booking lifecycle statuses. A booking always starts as pending.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every valid status, in lifecycle order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// adminTransitions is the legal transition table for admin-issued status
// changes. completed and cancelled are terminal.
var adminTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValidStatus reports whether s is one of the four booking statuses.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an admin may move a booking from one
// status to another. Requests outside the table are rejected regardless
// of what any client offers.
func CanTransition(from, to string) bool {
	for _, v := range adminTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

// CanCancel reports whether the booking owner may cancel. Riders can
// only cancel bookings that are still pending.
func CanCancel(status string) bool {
	return status == StatusPending
}
