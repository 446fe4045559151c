// Package email delivers the workflows' notification messages through the
// mail platform. Two transports exist: Microsoft Graph (the production
// tenant mailbox) and plain SMTP for environments without a Graph tenant.
package email

import (
	"context"

	"wholesale_portal_backend/platform/config"
)

// Sender delivers the three notification messages the workflows produce.
// Implementations compose a fresh message per call; nothing is persisted.
type Sender interface {
	// SendActivationEmail mails the new customer their one-time account
	// activation link.
	SendActivationEmail(ctx context.Context, toEmail, firstName, activationURL string) error
	// SendRegistrationNotice mails staff that a wholesale registration
	// came in.
	SendRegistrationNotice(ctx context.Context, to []string, companyName, contactName, contactEmail string) error
	// SendTaxFormNotice mails staff that a tax-exempt document was
	// uploaded and linked to a customer.
	SendTaxFormNotice(ctx context.Context, to []string, companyName, customerID string) error
}

// NoopSender is used when email is disabled.
type NoopSender struct{}

func (NoopSender) SendActivationEmail(ctx context.Context, toEmail, firstName, activationURL string) error {
	return nil
}

func (NoopSender) SendRegistrationNotice(ctx context.Context, to []string, companyName, contactName, contactEmail string) error {
	return nil
}

func (NoopSender) SendTaxFormNotice(ctx context.Context, to []string, companyName, customerID string) error {
	return nil
}

// NewSender selects the configured transport.
func NewSender(cfg config.MailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetMailTransport() {
	case config.MailTransportSMTP:
		return NewSMTPSender(cfg), nil
	default:
		return NewGraphSender(cfg), nil
	}
}
