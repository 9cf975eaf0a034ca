package models

// AvailableSlot is one bookable window for a specific service/staff/date
// combination. Slots are ephemeral: recomputed from scratch on every query,
// never persisted.
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}
