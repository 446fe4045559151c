package notification

import (
	"context"
	"errors"
	"testing"

	"wholesale_portal_backend/internal/events"
	"wholesale_portal_backend/platform/logger"
)

type testNotificationConfig struct{}

func (testNotificationConfig) GetStaffRecipients() []string { return []string{"staff@example.com"} }
func (testNotificationConfig) GetShopName() string          { return "Wholesale" }

type testSender struct {
	activationErr error

	activationCalls   int
	registrationCalls int
	taxFormCalls      int

	lastActivationTo  string
	lastActivationURL string
	lastNoticeTo      []string
}

func (s *testSender) SendActivationEmail(_ context.Context, toEmail, firstName, activationURL string) error {
	s.activationCalls++
	s.lastActivationTo = toEmail
	s.lastActivationURL = activationURL
	return s.activationErr
}

func (s *testSender) SendRegistrationNotice(_ context.Context, to []string, companyName, contactName, contactEmail string) error {
	s.registrationCalls++
	s.lastNoticeTo = to
	return nil
}

func (s *testSender) SendTaxFormNotice(_ context.Context, to []string, companyName, customerID string) error {
	s.taxFormCalls++
	s.lastNoticeTo = to
	return nil
}

func TestCustomerRegisteredSendsActivationThenStaffNotice(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	err := m.Handle(context.Background(), events.CustomerRegistered{
		BaseEvent:     events.NewBaseEvent(),
		CustomerID:    "gid://shopify/Customer/1",
		Email:         "a@b.com",
		FirstName:     "A",
		LastName:      "B",
		CompanyName:   "Acme",
		ActivationURL: "https://shop.example/account/activate/1/tok",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.activationCalls != 1 {
		t.Fatalf("expected 1 activation email, got %d", sender.activationCalls)
	}
	if sender.lastActivationTo != "a@b.com" {
		t.Fatalf("activation sent to %q", sender.lastActivationTo)
	}
	if sender.registrationCalls != 1 {
		t.Fatalf("expected staff notice after successful activation send, got %d", sender.registrationCalls)
	}
	if len(sender.lastNoticeTo) != 1 || sender.lastNoticeTo[0] != "staff@example.com" {
		t.Fatalf("staff notice recipients: %v", sender.lastNoticeTo)
	}
}

func TestCustomerRegisteredSkipsStaffNoticeWhenActivationFails(t *testing.T) {
	sender := &testSender{activationErr: errors.New("mailbox unavailable")}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	err := m.Handle(context.Background(), events.CustomerRegistered{
		BaseEvent: events.NewBaseEvent(),
		Email:     "a@b.com",
	})
	if err != nil {
		t.Fatalf("send failures must not propagate, got %v", err)
	}

	if sender.registrationCalls != 0 {
		t.Fatal("staff notice must not be sent when the activation email failed")
	}
}

func TestTaxExemptFormLinkedSendsStaffNotice(t *testing.T) {
	sender := &testSender{}
	m := New(sender, testNotificationConfig{}, logger.New("development"))

	err := m.Handle(context.Background(), events.TaxExemptFormLinked{
		BaseEvent:   events.NewBaseEvent(),
		CustomerID:  "gid://shopify/Customer/7",
		CompanyName: "Acme",
		FileID:      "gid://shopify/GenericFile/3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.taxFormCalls != 1 {
		t.Fatalf("expected 1 staff notice, got %d", sender.taxFormCalls)
	}
	if sender.activationCalls != 0 {
		t.Fatal("no customer email is sent for an upload")
	}
}
