// Package notification turns domain events into outbound email. It runs
// entirely on the event bus's dispatch goroutines: no workflow response ever
// waits on — or learns about — a notification outcome. Send failures are
// visible in the logs only.
package notification

import (
	"context"

	"wholesale_portal_backend/internal/email"
	"wholesale_portal_backend/internal/events"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/logger"
)

// Module subscribes to domain events and dispatches notification email.
type Module struct {
	sender email.Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// New creates the notification module.
func New(sender email.Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		cfg:    cfg,
		log:    log,
	}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.CustomerRegistered{}.EventName(), m)
	bus.Subscribe(events.TaxExemptFormLinked{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.CustomerRegistered:
		m.handleCustomerRegistered(ctx, e)
	case events.TaxExemptFormLinked:
		m.handleTaxExemptFormLinked(ctx, e)
	}
	return nil
}

// handleCustomerRegistered sends the customer their activation link, then —
// only when that delivery succeeded — the internal staff notice.
func (m *Module) handleCustomerRegistered(ctx context.Context, e events.CustomerRegistered) {
	if err := m.sender.SendActivationEmail(ctx, e.Email, e.FirstName, e.ActivationURL); err != nil {
		m.log.MailError("activation", e.Email, err)
		return
	}

	contactName := e.FirstName + " " + e.LastName
	if err := m.sender.SendRegistrationNotice(ctx, m.cfg.GetStaffRecipients(), e.CompanyName, contactName, e.Email); err != nil {
		m.log.MailError("registration_notice", e.CompanyName, err)
	}
}

func (m *Module) handleTaxExemptFormLinked(ctx context.Context, e events.TaxExemptFormLinked) {
	if err := m.sender.SendTaxFormNotice(ctx, m.cfg.GetStaffRecipients(), e.CompanyName, e.CustomerID); err != nil {
		m.log.MailError("tax_form_notice", e.CompanyName, err)
	}
}

var _ events.Handler = (*Module)(nil)
