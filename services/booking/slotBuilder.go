package booking

import (
	"fmt"

	"salonbook/models"
	"salonbook/utils"
)

// BuildDaySlots enumerates candidate start times across a day's working hours
// at a fixed step and keeps the ones where a service of the given duration
// fits entirely inside the open window, clears the break, and overlaps no
// busy booking. Candidates are emitted in ascending start order.
//
// Overlap is half-open on both sides: a candidate ending exactly when a
// booking starts (or starting exactly when one ends) is offered, so
// back-to-back appointments are allowed.
func BuildDaySlots(hours models.WorkingHoursEntry, durationMin, stepMin int, busy []models.Booking) ([]models.AvailableSlot, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("service duration must be positive, got %d", durationMin)
	}
	if stepMin <= 0 {
		return nil, fmt.Errorf("slot granularity must be positive, got %d", stepMin)
	}
	if !hours.IsWorking {
		return []models.AvailableSlot{}, nil
	}

	open, err := utils.ParseClock(hours.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("working hours: %w", err)
	}
	closeAt, err := utils.ParseClock(hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("working hours: %w", err)
	}

	hasBreak := hours.BreakStart != "" && hours.BreakEnd != ""
	var breakStart, breakEnd int
	if hasBreak {
		if breakStart, err = utils.ParseClock(hours.BreakStart); err != nil {
			return nil, fmt.Errorf("working hours: %w", err)
		}
		if breakEnd, err = utils.ParseClock(hours.BreakEnd); err != nil {
			return nil, fmt.Errorf("working hours: %w", err)
		}
	}

	slots := []models.AvailableSlot{}
	for start := open; start+durationMin <= closeAt; start += stepMin {
		end := start + durationMin

		if hasBreak && utils.Overlaps(start, end, breakStart, breakEnd) {
			continue
		}
		if overlapsAny(start, end, busy) {
			continue
		}

		slots = append(slots, models.AvailableSlot{
			StartTime: utils.FormatClock(start),
			EndTime:   utils.FormatClock(end),
		})
	}
	return slots, nil
}

func overlapsAny(start, end int, busy []models.Booking) bool {
	for _, b := range busy {
		if utils.Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
