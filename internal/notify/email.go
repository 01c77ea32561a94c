package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender abstracts the mail provider so callers don't care whether mail
// is actually configured.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// ===============================
// SendGrid
// ===============================

type SendgridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendgridSender(apiKey, fromEmail string) *SendgridSender {
	if apiKey == "" {
		return nil
	}
	return &SendgridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  "TIVROX",
	}
}

func (s *SendgridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// ===============================
// Stub (mail disabled)
// ===============================

type StubSender struct{}

func (StubSender) Send(_ context.Context, msg EmailMessage) error {
	log.Printf("notify: mail disabled, skipping %q to %s", msg.Subject, msg.To)
	return nil
}
