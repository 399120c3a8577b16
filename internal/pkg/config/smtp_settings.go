package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SMTPSettings holds the system email account used for outgoing report mail.
// An empty SenderEmail means outgoing mail is disabled and report emails are
// returned as previews instead of being sent.
type SMTPSettings struct {
	SenderEmail    string `mapstructure:"sender_email" validate:"omitempty,email"`
	SenderPassword string `mapstructure:"sender_password"`
	Server         string `mapstructure:"server"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	ReplyTo        string `mapstructure:"reply_to" validate:"omitempty,email"`
}

// Configured reports whether the settings are complete enough to send mail.
func (s *SMTPSettings) Configured() bool {
	return s.SenderEmail != "" && s.SenderPassword != ""
}

// Validate checks that all fields in SMTPSettings are valid
func (s *SMTPSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SMTPSettings: %w", err)
	}

	if s.Configured() && s.Server == "" {
		return fmt.Errorf("smtp server is required when a sender email is set")
	}

	return nil
}
