package booking

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "salonbook/database/repository/catalog"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// GetAvailableSlots computes the bookable windows for a staff member,
// service and date. A staff member who does not work that day yields an
// empty list, not an error; an unknown staff member or service is a hard
// notFound. Results are recomputed from scratch on every call — bookings can
// change between calls, so nothing is cached.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, staffMemberID, serviceID, date string) ([]models.AvailableSlot, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, newInvalidArgument("%v", err)
	}

	staff, err := s.StaffRepo.GetByID(ctx, staffMemberID)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return nil, newNotFound("staff member %s not found", staffMemberID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching staff member: %w", err)
	}

	svc, err := s.CatalogRepo.GetByID(ctx, serviceID)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return nil, newNotFound("service %s not found", serviceID)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching service: %w", err)
	}

	entry := staff.WorkingHoursFor(day.Weekday())
	if entry == nil || !entry.IsWorking {
		logger.Debug("no working hours for day",
			zap.String("staffMemberID", staffMemberID),
			zap.String("date", date),
			zap.Stringer("weekday", day.Weekday()))
		return []models.AvailableSlot{}, nil
	}

	busy, err := s.Scheduler.GetActiveBookings(ctx, staffMemberID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching existing bookings: %w", err)
	}

	slots, err := BuildDaySlots(*entry, svc.DurationMinutes, s.granularity(), busy)
	if err != nil {
		return nil, fmt.Errorf("building slots for %s on %s: %w", staffMemberID, date, err)
	}
	return slots, nil
}
