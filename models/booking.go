package models

import "time"

// Booking statuses. A booking is never physically deleted: cancellation and
// no-show are status transitions.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no-show"
)

// InactiveStatuses are the statuses whose bookings no longer occupy their
// interval; everything else counts toward the no-overlap invariant.
var InactiveStatuses = []string{StatusCancelled, StatusNoShow}

var statusTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether a booking may move from one status to
// another. Completed, cancelled and no-show are terminal.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsActiveStatus reports whether a booking in this status still occupies its
// time interval.
func IsActiveStatus(s string) bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Booking represents one reserved appointment. Start and End are minutes from
// midnight (e.g., 600 for 10:00); Date is "YYYY-MM-DD". End is always derived
// server-side as Start plus the service duration.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"service_id" json:"service_id"`
	StaffMemberID string    `bson:"staff_member_id" json:"staff_member_id"`
	CustomerID    string    `bson:"customer_id" json:"customer_id"`
	Date          string    `bson:"date" json:"date"`
	Start         int       `bson:"start" json:"start"`
	End           int       `bson:"end" json:"end"`
	Status        string    `bson:"status" json:"status"`
	TotalPrice    float64   `bson:"total_price" json:"total_price"`
	CustomerNotes string    `bson:"customer_notes,omitempty" json:"customer_notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
