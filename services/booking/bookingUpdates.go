package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	schedulerRepo "salonbook/database/repository/scheduler"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// GetBooking fetches a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Scheduler.GetByID(ctx, id)
	if errors.Is(err, schedulerRepo.ErrNotFound) {
		return nil, newNotFound("booking %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching booking: %w", err)
	}
	return b, nil
}

// ListCustomerBookings returns all bookings a customer has made, newest first.
func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.Scheduler.ListForCustomer(ctx, customerID)
}

// UpdateBookingStatus moves a booking along the status machine:
// pending -> confirmed -> in-progress -> completed, with cancelled and
// no-show as terminal exits. Invalid transitions are policy violations.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id, next string) (*models.Booking, error) {
	if !models.ValidStatus(next) {
		return nil, newInvalidArgument("unknown booking status %q", next)
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(b.Status, next) {
		return nil, newPolicyViolation("cannot move booking from %s to %s", b.Status, next)
	}

	if err := s.Scheduler.UpdateStatus(ctx, id, b.Status, next); err != nil {
		if errors.Is(err, schedulerRepo.ErrNotFound) {
			// Status moved underneath us between the read and the update.
			return nil, newSlotConflict("booking %s changed concurrently, re-fetch and retry", id)
		}
		return nil, fmt.Errorf("updating booking status: %w", err)
	}
	b.Status = next
	return b, nil
}

// CancelBooking transitions a booking to cancelled. Customer cancellations
// are gated by the minimum-notice policy; staff and admin cancellations are
// not. Cancelled bookings stop occupying their interval immediately, so the
// slot shows up again on the next availability query.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string, byStaff bool) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(b.Status, models.StatusCancelled) {
		return nil, newPolicyViolation("booking in status %s cannot be cancelled", b.Status)
	}

	if !byStaff {
		// A customer may only cancel upcoming pending/confirmed bookings,
		// and only with enough notice.
		if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
			return nil, newPolicyViolation("booking in status %s cannot be cancelled by the customer", b.Status)
		}
		appointmentAt, err := utils.CombineDateClock(b.Date, b.Start)
		if err != nil {
			return nil, fmt.Errorf("resolving appointment time: %w", err)
		}
		if appointmentAt.Sub(s.now()) < s.cancelNotice() {
			return nil, newPolicyViolation("cancellations require at least %s notice", s.cancelNotice())
		}
	}

	if err := s.Scheduler.UpdateStatus(ctx, id, b.Status, models.StatusCancelled); err != nil {
		if errors.Is(err, schedulerRepo.ErrNotFound) {
			return nil, newSlotConflict("booking %s changed concurrently, re-fetch and retry", id)
		}
		return nil, fmt.Errorf("cancelling booking: %w", err)
	}
	b.Status = models.StatusCancelled

	logger.Info("booking cancelled",
		zap.String("bookingID", b.ID),
		zap.Bool("byStaff", byStaff))

	if s.Notifier != nil {
		go s.notifyCancellation(*b)
	}
	return b, nil
}

func (s *DefaultBookingService) notifyCancellation(b models.Booking) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	customer, err := s.CustomerRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		logger.Error("cancellation notification skipped: customer lookup failed",
			zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if err := s.Notifier.SendBookingCancellation(ctx, b, *customer); err != nil {
		logger.Error("cancellation notification failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
