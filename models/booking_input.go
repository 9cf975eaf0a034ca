package models

// AvailableSlotsRequest is the payload for the slot query.
type AvailableSlotsRequest struct {
	StaffMemberID string `json:"staffMemberId" form:"staffMemberId" binding:"required"`
	ServiceID     string `json:"serviceId" form:"serviceId" binding:"required"`
	Date          string `json:"date" form:"date" binding:"required"` // "YYYY-MM-DD"
}

// CreateBookingRequest is the payload for creating a booking. EndTime and
// TotalPrice are never accepted from the client; both are computed from the
// service record on the server.
type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	StaffMemberID string `json:"staffMemberId" binding:"required"`
	CustomerID    string `json:"customerId" binding:"required"`
	Date          string `json:"appointmentDate" binding:"required"` // "YYYY-MM-DD"
	StartTime     string `json:"startTime" binding:"required"`       // "HH:MM"
	CustomerNotes string `json:"customerNotes"`
}
