package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "salonbook/database/repository/catalog"
	customerRepo "salonbook/database/repository/customer"
	schedulerRepo "salonbook/database/repository/scheduler"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking reserves one slot. The availability result the customer saw
// may be stale by the time they confirm, so the conflict check is re-run
// atomically inside the store transaction; a collision surfaces as
// slotConflict and the caller is expected to re-query availability and pick
// another slot.
//
// initialStatus comes from the calling context (self-service vs admin); an
// empty value falls back to pending.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest, initialStatus string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, newInvalidArgument("%v", err)
	}
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, newInvalidArgument("startTime: %v", err)
	}
	if initialStatus == "" {
		initialStatus = models.StatusPending
	}
	if initialStatus != models.StatusPending && initialStatus != models.StatusConfirmed {
		return nil, newInvalidArgument("initial status must be pending or confirmed, got %q", initialStatus)
	}

	// Never trust a client-supplied duration or end time: re-fetch the service.
	svc, err := s.CatalogRepo.GetByID(ctx, req.ServiceID)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, newNotFound("service %s not found", req.ServiceID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching service: %w", err)
	}
	if svc.DurationMinutes <= 0 {
		return nil, newInvalidArgument("service %s has non-positive duration", svc.ID)
	}

	staff, err := s.StaffRepo.GetByID(ctx, req.StaffMemberID)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return nil, newNotFound("staff member %s not found", req.StaffMemberID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching staff member: %w", err)
	}

	customer, err := s.CustomerRepo.GetByID(ctx, req.CustomerID)
	if errors.Is(err, customerRepo.ErrNotFound) {
		return nil, newNotFound("customer %s not found", req.CustomerID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching customer: %w", err)
	}

	end := start + svc.DurationMinutes
	if !utils.ValidClock(start) || end > 24*60 {
		return nil, newInvalidArgument("appointment %s+%dmin runs past midnight", req.StartTime, svc.DurationMinutes)
	}

	now := s.now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     svc.ID,
		StaffMemberID: staff.ID,
		CustomerID:    customer.ID,
		Date:          req.Date,
		Start:         start,
		End:           end,
		Status:        initialStatus,
		TotalPrice:    svc.Price,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Scheduler.CreateBookingIfFree(ctx, booking); err != nil {
		if errors.Is(err, schedulerRepo.ErrSlotTaken) {
			return nil, newSlotConflict("slot %s-%s on %s is no longer available",
				req.StartTime, utils.FormatClock(end), req.Date)
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("staffMemberID", staff.ID),
		zap.String("date", booking.Date),
		zap.String("start", req.StartTime))

	// Post-commit side effects are best-effort: the booking is durably
	// committed and a failed notification must not roll it back or surface as
	// a booking failure.
	go s.dispatchFollowups(*booking, *customer, *staff, *svc)

	return booking, nil
}

func (s *DefaultBookingService) dispatchFollowups(b models.Booking, customer models.Customer, staff models.StaffMember, svc models.Service) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, b, customer, staff, svc); err != nil {
			logger.Error("booking confirmation notification failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if s.TaskQueue != nil {
		if err := s.scheduleReminder(b); err != nil {
			logger.Error("failed to schedule reminder",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}

func (s *DefaultBookingService) scheduleReminder(b models.Booking) error {
	appointmentAt, err := utils.CombineDateClock(b.Date, b.Start)
	if err != nil {
		return err
	}
	fireAt := appointmentAt.Add(-24 * time.Hour)
	if fireAt.Before(s.now()) {
		return nil
	}

	task, opts, err := tasks.NewReminderTask(tasks.ReminderPayload{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
	}, fireAt)
	if err != nil {
		return err
	}
	_, err = s.TaskQueue.Enqueue(task, opts...)
	return err
}
