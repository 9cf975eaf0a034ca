package notification

import (
	"context"
	"fmt"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation: SMS via
// Twilio and email via SendGrid, whichever contact channels the customer has.
// Either sender may be nil when the channel is not configured.
type DefaultNotificationService struct {
	SMS   SMSSender
	Email EmailSender
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, b models.Booking, customer models.Customer, staff models.StaffMember, svc models.Service) error {
	body := fmt.Sprintf(
		"Hi %s, your %s with %s is booked for %s at %s. See you then!",
		customer.Name, svc.Name, staff.Name, b.Date, utils.FormatClock(b.Start),
	)
	subject := fmt.Sprintf("Booking confirmed for %s", b.Date)
	return s.deliver(ctx, customer, subject, body)
}

func (s *DefaultNotificationService) SendBookingCancellation(ctx context.Context, b models.Booking, customer models.Customer) error {
	body := fmt.Sprintf(
		"Hi %s, your appointment on %s at %s has been cancelled.",
		customer.Name, b.Date, utils.FormatClock(b.Start),
	)
	subject := fmt.Sprintf("Booking cancelled for %s", b.Date)
	return s.deliver(ctx, customer, subject, body)
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, b models.Booking, customer models.Customer) error {
	body := fmt.Sprintf(
		"Hi %s, a reminder: your appointment is on %s at %s.",
		customer.Name, b.Date, utils.FormatClock(b.Start),
	)
	subject := fmt.Sprintf("Appointment reminder for %s", b.Date)
	return s.deliver(ctx, customer, subject, body)
}

// deliver fans the message out to every channel the customer has. Channel
// failures are collected rather than short-circuiting so one bad provider
// does not starve the other.
func (s *DefaultNotificationService) deliver(ctx context.Context, customer models.Customer, subject, body string) error {
	logger := utils.GetLogger()
	var firstErr error

	if s.SMS != nil && customer.Phone != "" {
		if err := s.SMS.Send(ctx, customer.Phone, body); err != nil {
			logger.Warn("sms delivery failed",
				zap.String("customerID", customer.ID), zap.Error(err))
			firstErr = err
		}
	}
	if s.Email != nil && customer.Email != "" {
		if err := s.Email.Send(ctx, customer.Email, customer.Name, subject, body); err != nil {
			logger.Warn("email delivery failed",
				zap.String("customerID", customer.ID), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
