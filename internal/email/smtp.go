package email

import (
	"context"
	"fmt"
	"time"

	"wholesale_portal_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers the same rendered templates over a direct SMTP
// connection via go-mail. Used in environments without a Graph tenant.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates an SMTP sender from the mail configuration.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetMailSenderName(),
		fromEmail: cfg.GetMailSenderAddress(),
	}
}

func (s *SMTPSender) send(ctx context.Context, to []string, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendActivationEmail(ctx context.Context, toEmail, firstName, activationURL string) error {
	content, err := renderEmailTemplate("activation.html", activationEmailData{
		baseEmailData: baseEmailData{
			Title:    "Activate your account",
			Heading:  "Welcome aboard",
			CTALabel: "Activate account",
			CTAURL:   activationURL,
		},
		FirstName: firstName,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, []string{toEmail}, subjectActivation, content)
}

func (s *SMTPSender) SendRegistrationNotice(ctx context.Context, to []string, companyName, contactName, contactEmail string) error {
	content, err := renderEmailTemplate("registration_notice.html", registrationNoticeData{
		baseEmailData: baseEmailData{
			Title:   "New wholesale registration",
			Heading: "New wholesale registration",
		},
		CompanyName:  companyName,
		ContactName:  contactName,
		ContactEmail: contactEmail,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, to, fmt.Sprintf(subjectRegistrationNoticeFmt, companyName), content)
}

func (s *SMTPSender) SendTaxFormNotice(ctx context.Context, to []string, companyName, customerID string) error {
	content, err := renderEmailTemplate("tax_form_notice.html", taxFormNoticeData{
		baseEmailData: baseEmailData{
			Title:   "Tax exempt form uploaded",
			Heading: "Tax exempt form uploaded",
		},
		CompanyName: companyName,
		CustomerID:  customerID,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, to, fmt.Sprintf(subjectTaxFormNoticeFmt, companyName), content)
}

var _ Sender = (*SMTPSender)(nil)
