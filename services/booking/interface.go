package booking

import (
	"context"
	"time"

	catalogRepo "salonbook/database/repository/catalog"
	customerRepo "salonbook/database/repository/customer"
	schedulerRepo "salonbook/database/repository/scheduler"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/notification"

	"github.com/hibiken/asynq"
)

// DefaultSlotGranularityMin is used when no granularity is configured. The
// step is a fixed enumeration constant; never derived from service durations.
const DefaultSlotGranularityMin = 15

// DefaultCancelNoticeHours is the minimum notice a customer must give before
// cancelling. Staff cancellations are not subject to it.
const DefaultCancelNoticeHours = 24

// BookingService is the single implementation of slot availability and
// conflict-checked booking creation. Storage and notification collaborators
// are swappable behind their interfaces.
type BookingService interface {
	GetAvailableSlots(ctx context.Context, staffMemberID, serviceID, date string) ([]models.AvailableSlot, error)
	CreateBooking(ctx context.Context, req models.CreateBookingRequest, initialStatus string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, next string) (*models.Booking, error)
	// CancelBooking cancels a booking. byStaff bypasses the customer
	// minimum-notice policy.
	CancelBooking(ctx context.Context, id string, byStaff bool) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	StaffRepo    staffRepo.StaffRepository
	CatalogRepo  catalogRepo.CatalogRepository
	CustomerRepo customerRepo.CustomerRepository
	Scheduler    schedulerRepo.SchedulerRepository
	Notifier     notification.NotificationService

	// TaskQueue schedules reminder delivery; nil disables scheduling (tests,
	// deployments without a worker).
	TaskQueue *asynq.Client

	GranularityMin    int
	CancelNoticeHours int

	// Clock is overridable for tests; defaults to time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultBookingService) granularity() int {
	if s.GranularityMin > 0 {
		return s.GranularityMin
	}
	return DefaultSlotGranularityMin
}

func (s *DefaultBookingService) cancelNotice() time.Duration {
	hours := s.CancelNoticeHours
	if hours <= 0 {
		hours = DefaultCancelNoticeHours
	}
	return time.Duration(hours) * time.Hour
}
