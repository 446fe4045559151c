package service

import (
	"context"
	"testing"

	"wholesale_portal_backend/internal/commerce"
	"wholesale_portal_backend/internal/events"
	"wholesale_portal_backend/internal/registration/transport"
	"wholesale_portal_backend/platform/logger"
)

type fakeGateway struct {
	createErr     error
	activationErr error

	createCalls     int
	activationCalls int
	lastInput       commerce.CustomerCreateInput
	lastCustomerID  string
}

func (f *fakeGateway) CreateCustomer(_ context.Context, input commerce.CustomerCreateInput) (*commerce.Customer, error) {
	f.createCalls++
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &commerce.Customer{ID: "gid://shopify/Customer/42", Email: input.Email, Phone: input.Phone}, nil
}

func (f *fakeGateway) GenerateAccountActivationURL(_ context.Context, customerID string) (string, error) {
	f.activationCalls++
	f.lastCustomerID = customerID
	if f.activationErr != nil {
		return "", f.activationErr
	}
	return "https://shop.example/account/activate/42/tok", nil
}

type fakeBus struct {
	published []events.Event
}

func (f *fakeBus) Publish(_ context.Context, event events.Event) {
	f.published = append(f.published, event)
}

func (f *fakeBus) PublishSync(_ context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakeBus) Subscribe(string, events.Handler) {}

func acmeRequest() transport.RegisterRequest {
	return transport.RegisterRequest{
		CompanyName:    "Acme",
		FirstName:      "A",
		LastName:       "B",
		Email:          "a@b.com",
		CompanyWebsite: "acme.com",
		PhoneNumber:    "5551234567",
	}
}

func TestRegisterNormalizesPhoneAndWebsite(t *testing.T) {
	gateway := &fakeGateway{}
	bus := &fakeBus{}
	svc := New(gateway, bus, logger.New("development"))

	svc.Register(context.Background(), acmeRequest())

	if gateway.lastInput.Phone != "+15551234567" {
		t.Fatalf("expected normalized phone +15551234567, got %q", gateway.lastInput.Phone)
	}

	var website *commerce.MetafieldInput
	for i := range gateway.lastInput.Metafields {
		if gateway.lastInput.Metafields[i].Key == "company_website" {
			website = &gateway.lastInput.Metafields[i]
		}
	}
	if website == nil {
		t.Fatal("expected company_website metafield")
	}
	if website.Value != "http://acme.com" {
		t.Fatalf("expected normalized website http://acme.com, got %q", website.Value)
	}
}

func TestRegisterOmitsInvalidWebsiteMetafield(t *testing.T) {
	gateway := &fakeGateway{}
	svc := New(gateway, &fakeBus{}, logger.New("development"))

	req := acmeRequest()
	req.CompanyWebsite = `not a "website"`
	svc.Register(context.Background(), req)

	for _, m := range gateway.lastInput.Metafields {
		if m.Key == "company_website" {
			t.Fatalf("invalid website must be omitted, got metafield %q", m.Value)
		}
	}
	if gateway.createCalls != 1 {
		t.Fatal("an invalid website must not block customer creation")
	}
}

func TestRegisterSubmitsEmptyPhoneWhenUnusable(t *testing.T) {
	gateway := &fakeGateway{}
	svc := New(gateway, &fakeBus{}, logger.New("development"))

	req := acmeRequest()
	req.PhoneNumber = "123"
	svc.Register(context.Background(), req)

	if gateway.createCalls != 1 {
		t.Fatal("an unusable phone must not block customer creation")
	}
	if gateway.lastInput.Phone != "" {
		t.Fatalf("expected empty phone, got %q", gateway.lastInput.Phone)
	}
}

func TestRegisterCreateFailureSendsNothing(t *testing.T) {
	gateway := &fakeGateway{
		createErr: &commerce.GatewayError{
			Operation:  "customerCreate",
			UserErrors: []commerce.UserError{{Field: []string{"email"}, Message: "Email has already been taken"}},
		},
	}
	bus := &fakeBus{}
	svc := New(gateway, bus, logger.New("development"))

	svc.Register(context.Background(), acmeRequest())

	if gateway.activationCalls != 0 {
		t.Fatal("no activation link may be minted when creation failed")
	}
	if len(bus.published) != 0 {
		t.Fatal("no notification event may be published when creation failed")
	}
}

func TestRegisterActivationFailureSendsNothing(t *testing.T) {
	gateway := &fakeGateway{activationErr: &commerce.GatewayError{Operation: "customerGenerateAccountActivationUrl"}}
	bus := &fakeBus{}
	svc := New(gateway, bus, logger.New("development"))

	svc.Register(context.Background(), acmeRequest())

	if len(bus.published) != 0 {
		t.Fatal("no notification event may be published when the activation link failed")
	}
}

func TestRegisterPublishesCustomerRegistered(t *testing.T) {
	gateway := &fakeGateway{}
	bus := &fakeBus{}
	svc := New(gateway, bus, logger.New("development"))

	svc.Register(context.Background(), acmeRequest())

	if gateway.lastCustomerID != "gid://shopify/Customer/42" {
		t.Fatalf("activation link minted for %q", gateway.lastCustomerID)
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	evt, ok := bus.published[0].(events.CustomerRegistered)
	if !ok {
		t.Fatalf("expected CustomerRegistered, got %T", bus.published[0])
	}
	if evt.ActivationURL == "" || evt.Email != "a@b.com" {
		t.Fatalf("event missing fields: %+v", evt)
	}
}
