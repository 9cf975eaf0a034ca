package models

import (
	"fmt"
	"time"

	"salonbook/utils"
)

// WorkingHoursEntry is one day of a staff member's recurring weekly schedule.
// Times are "HH:MM" wall-clock strings; Weekday follows time.Weekday
// numbering (0=Sunday .. 6=Saturday).
type WorkingHoursEntry struct {
	Weekday    int    `bson:"weekday" json:"weekday"`
	IsWorking  bool   `bson:"isWorking" json:"isWorking"`
	OpenTime   string `bson:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime  string `bson:"closeTime,omitempty" json:"closeTime,omitempty"`
	BreakStart string `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd   string `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
}

// Validate checks the entry invariants: open < close when working, and any
// break window sits inside the open window.
func (e WorkingHoursEntry) Validate() error {
	if e.Weekday < 0 || e.Weekday > 6 {
		return fmt.Errorf("weekday %d out of range", e.Weekday)
	}
	if !e.IsWorking {
		return nil
	}
	open, err := utils.ParseClock(e.OpenTime)
	if err != nil {
		return fmt.Errorf("openTime: %w", err)
	}
	closeAt, err := utils.ParseClock(e.CloseTime)
	if err != nil {
		return fmt.Errorf("closeTime: %w", err)
	}
	if open >= closeAt {
		return fmt.Errorf("openTime %s must be before closeTime %s", e.OpenTime, e.CloseTime)
	}
	if e.BreakStart == "" && e.BreakEnd == "" {
		return nil
	}
	bs, err := utils.ParseClock(e.BreakStart)
	if err != nil {
		return fmt.Errorf("breakStart: %w", err)
	}
	be, err := utils.ParseClock(e.BreakEnd)
	if err != nil {
		return fmt.Errorf("breakEnd: %w", err)
	}
	if bs >= be || bs < open || be > closeAt {
		return fmt.Errorf("break window %s-%s must fall within %s-%s", e.BreakStart, e.BreakEnd, e.OpenTime, e.CloseTime)
	}
	return nil
}

// StaffMember is a bookable member of the salon staff. The weekly schedule is
// embedded in the document, one entry per configured day.
type StaffMember struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Phone        string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string              `bson:"email,omitempty" json:"email,omitempty"`
	WorkingHours []WorkingHoursEntry `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// WorkingHoursFor returns the schedule entry for the given weekday, or nil if
// none is configured. A missing entry means the staff member does not work
// that day.
func (s *StaffMember) WorkingHoursFor(weekday time.Weekday) *WorkingHoursEntry {
	for i := range s.WorkingHours {
		if s.WorkingHours[i].Weekday == int(weekday) {
			return &s.WorkingHours[i]
		}
	}
	return nil
}
