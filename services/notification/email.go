package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridSender sends plain-text email through SendGrid.
type SendgridSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewSendgridSender(apiKey, from, fromName string) (*SendgridSender, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("sendgrid credentials not fully configured")
	}
	return &SendgridSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}, nil
}

func (s *SendgridSender) Send(_ context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	dest := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, dest, body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
