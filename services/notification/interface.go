package notification

import (
	"context"

	"salonbook/models"
)

// NotificationService sends booking lifecycle messages to customers. All of
// these run after the booking state is durably committed: a send failure is
// logged by the caller and never rolls the booking back.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking, customer models.Customer, staff models.StaffMember, svc models.Service) error
	SendBookingCancellation(ctx context.Context, b models.Booking, customer models.Customer) error
	SendBookingReminder(ctx context.Context, b models.Booking, customer models.Customer) error
}

// SMSSender delivers a single SMS message.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// EmailSender delivers a single plain-text email.
type EmailSender interface {
	Send(ctx context.Context, to, toName, subject, body string) error
}
