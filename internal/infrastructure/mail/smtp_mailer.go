package mail

import (
	"bytes"
	"context"
	"fmt"

	"therapy_companion_service/internal/domain/reports"
	"therapy_companion_service/internal/pkg/config"
	"therapy_companion_service/internal/pkg/logger"

	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer delivers report messages over SMTP with STARTTLS.
type SMTPMailer struct {
	settings config.SMTPSettings
	logger   logger.Logger
}

func NewSMTPMailer(settings config.SMTPSettings, logger logger.Logger) (*SMTPMailer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &SMTPMailer{settings: settings, logger: logger}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg reports.Message) error {
	if !m.settings.Configured() {
		return fmt.Errorf("smtp credentials are not configured")
	}

	message := gomail.NewMsg()
	if err := message.From(m.settings.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := message.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if len(msg.Attachment) > 0 {
		message.AttachReader(msg.AttachmentName, bytes.NewReader(msg.Attachment),
			gomail.WithFileContentType(gomail.ContentType(reports.XlsxContentType)))
	}

	client, err := gomail.NewClient(m.settings.Server,
		gomail.WithPort(m.settings.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.settings.SenderEmail),
		gomail.WithPassword(m.settings.SenderPassword),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	m.logger.Info("Email sent to ", msg.To, " with subject ", msg.Subject)
	return nil
}
