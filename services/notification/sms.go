package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("twilio credentials not fully configured")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})
	return &TwilioSender{client: client, fromNumber: fromNumber}, nil
}

func (s *TwilioSender) Send(_ context.Context, to, body string) error {
	if !strings.HasPrefix(to, "+") {
		return fmt.Errorf("destination number %q is not E.164", to)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
