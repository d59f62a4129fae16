// Package emailjs sends the pickup-code email through the EmailJS REST API.
package emailjs

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/ports"
	"missionctl/internal/pkg/errs"
)

// DefaultBaseURL is the public EmailJS endpoint.
const DefaultBaseURL = "https://api.emailjs.com"

const sendPath = "/api/v1.0/email/send"

var _ ports.OtpMailer = (*Mailer)(nil)

// Config names the EmailJS template that renders the pickup code.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

func (c Config) validate() error {
	var missing []error
	if strings.TrimSpace(c.ServiceID) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("service_id"))
	}
	if strings.TrimSpace(c.TemplateID) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("template_id"))
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("user_id"))
	}
	return errors.Join(missing...)
}

type Mailer struct {
	client *restclient.Client
	config Config
	logger *slog.Logger
}

func NewMailer(client *restclient.Client, config Config, logger *slog.Logger) (*Mailer, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{client: client, config: config, logger: logger.With("component", "otp_mailer")}, nil
}

type sendRequestDTO struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams templateParamsDTO `json:"template_params"`
}

type templateParamsDTO struct {
	MailID       string `json:"mail_id"`
	OTP          string `json:"otp"`
	PackageID    string `json:"package_id"`
	RackLocation string `json:"rack_location"`
}

func (m *Mailer) SendOtp(ctx context.Context, email ports.OtpEmail) error {
	if strings.TrimSpace(email.Recipient) == "" {
		return errs.NewValueIsRequiredError("mail_id")
	}
	if strings.TrimSpace(email.Code) == "" {
		return errs.NewValueIsRequiredError("otp")
	}

	body := sendRequestDTO{
		ServiceID:  m.config.ServiceID,
		TemplateID: m.config.TemplateID,
		UserID:     m.config.PublicKey,
		TemplateParams: templateParamsDTO{
			MailID:       email.Recipient,
			OTP:          email.Code,
			PackageID:    email.PackageID,
			RackLocation: email.RackLabel,
		},
	}
	if err := m.client.Post(ctx, "send otp email", sendPath, body, nil); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "OTP email accepted", "package_id", email.PackageID, "rack", email.RackLabel)
	return nil
}
