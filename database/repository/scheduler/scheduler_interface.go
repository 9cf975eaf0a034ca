package schedulerRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

// ErrSlotTaken is returned when the requested interval collided with an
// existing active booking at commit time.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when no booking matches the given id (or the
// expected status no longer holds).
var ErrNotFound = errors.New("booking not found")

// SchedulerRepository defines data access for booking records. It is the only
// mutator of the bookings collection; availability computation reads through
// GetActiveBookings and tolerates the read-skew window, which is why
// CreateBookingIfFree re-checks conflicts inside a transaction.
type SchedulerRepository interface {
	// GetActiveBookings returns bookings for a staff member and date whose
	// status still occupies the interval (not cancelled or no-show).
	GetActiveBookings(ctx context.Context, staffMemberID, date string) ([]models.Booking, error)
	// CreateBookingIfFree inserts the booking if and only if its half-open
	// interval does not overlap any active booking for the same staff member
	// and date, atomically. Returns ErrSlotTaken on conflict.
	CreateBookingIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// UpdateStatus moves a booking from an expected current status to the next
	// one. The expected status is part of the filter so concurrent transitions
	// cannot race past each other; a miss returns ErrNotFound.
	UpdateStatus(ctx context.Context, id, expectedCurrent, next string) error
	// MarkElapsedPendingNoShow flags pending bookings whose window has fully
	// elapsed as no-show and reports how many were updated.
	MarkElapsedPendingNoShow(ctx context.Context, today string, nowClock int) (int64, error)
}
