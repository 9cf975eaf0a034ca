package models

import (
	"time"

	"salonbook/utils"
)

// BookingResponse is the wire shape of a booking: the stored minute offsets
// rendered back as "HH:MM" strings.
type BookingResponse struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"serviceId"`
	StaffMemberID   string    `json:"staffMemberId"`
	CustomerID      string    `json:"customerId"`
	AppointmentDate string    `json:"appointmentDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"totalPrice"`
	CustomerNotes   string    `json:"customerNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewBookingResponse converts a stored booking to its response shape.
func NewBookingResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		StaffMemberID:   b.StaffMemberID,
		CustomerID:      b.CustomerID,
		AppointmentDate: b.Date,
		StartTime:       utils.FormatClock(b.Start),
		EndTime:         utils.FormatClock(b.End),
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		CustomerNotes:   b.CustomerNotes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
