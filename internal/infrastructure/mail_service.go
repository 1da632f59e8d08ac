package infrastructure

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers an email to a single recipient. Implemented by the
// SendGrid-backed MailService; tests substitute their own.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type MailService struct {
	sender string
	client *sendgrid.Client
}

func NewMailService(apiKey, sender string) *MailService {
	return &MailService{
		sender: sender,
		client: sendgrid.NewSendClient(apiKey),
	}
}

func (m *MailService) Send(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail("DemCare", m.sender)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, body, fmt.Sprintf("<strong>%s</strong>", body))

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Println("Failed to send email:", err)
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status code %d", response.StatusCode)
	}
	return nil
}
