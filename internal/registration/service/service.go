// Package service implements the registration workflow: normalize the
// inbound fields, create the customer on the back office, mint an
// activation link, and hand notification off to the event bus.
//
// Back-office failures in this workflow are logged and swallowed: the
// storefront caller is always redirected as if registration succeeded.
// That asymmetry with the upload workflow is deliberate and documented —
// see DESIGN.md.
package service

import (
	"context"

	"wholesale_portal_backend/internal/commerce"
	"wholesale_portal_backend/internal/events"
	"wholesale_portal_backend/internal/registration/transport"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/phone"
	"wholesale_portal_backend/platform/weburl"
)

// Workflow stage names, carried in failure logs so an operator can tell
// which remote side effects already landed.
const (
	StageCreatingCustomer = "creating_customer"
	StageGeneratingLink   = "generating_activation_link"
)

// Customer metafield identifiers on the back office.
const (
	metafieldNamespace  = "custom"
	metafieldKeyCompany = "company"
	metafieldKeyPhone   = "phone_number"
	metafieldKeyWebsite = "company_website"
	metafieldTypeText   = "single_line_text_field"
)

// CommerceGateway is the slice of the commerce client this workflow drives.
// Satisfied by *commerce.Client.
type CommerceGateway interface {
	CreateCustomer(ctx context.Context, input commerce.CustomerCreateInput) (*commerce.Customer, error)
	GenerateAccountActivationURL(ctx context.Context, customerID string) (string, error)
}

// Service orchestrates the registration chain.
type Service struct {
	gateway CommerceGateway
	bus     events.Bus
	log     *logger.Logger
}

// New creates the registration service.
func New(gateway CommerceGateway, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		gateway: gateway,
		bus:     bus,
		log:     log,
	}
}

// Register runs the registration chain for one inbound request. It never
// returns an error: every back-office failure terminates the chain, is
// logged with its stage, and leaves the caller's redirect untouched.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) {
	log := s.log.WithContext(ctx)

	input := s.buildCustomerInput(req)

	customer, err := s.gateway.CreateCustomer(ctx, input)
	if err != nil {
		// The userErrors list travels inside the gateway error.
		log.RemoteCallError("commerce", StageCreatingCustomer, err)
		return
	}

	activationURL, err := s.gateway.GenerateAccountActivationURL(ctx, customer.ID)
	if err != nil {
		log.RemoteCallError("commerce", StageGeneratingLink, err)
		return
	}

	s.bus.Publish(ctx, events.CustomerRegistered{
		BaseEvent:     events.NewBaseEvent(),
		CustomerID:    customer.ID,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CompanyName:   req.CompanyName,
		ActivationURL: activationURL,
	})

	log.Info("customer registered", "customerId", customer.ID, "company", req.CompanyName)
}

// buildCustomerInput normalizes the inbound fields. An unusable phone
// becomes "no phone" rather than a rejection; an invalid website is
// silently omitted from the metafields.
func (s *Service) buildCustomerInput(req transport.RegisterRequest) commerce.CustomerCreateInput {
	metafields := []commerce.MetafieldInput{
		{Namespace: metafieldNamespace, Key: metafieldKeyCompany, Type: metafieldTypeText, Value: req.CompanyName},
		{Namespace: metafieldNamespace, Key: metafieldKeyPhone, Type: metafieldTypeText, Value: req.PhoneNumber},
	}

	if req.CompanyWebsite != "" {
		website := weburl.Normalize(req.CompanyWebsite)
		if weburl.Validate(website) {
			metafields = append(metafields, commerce.MetafieldInput{
				Namespace: metafieldNamespace,
				Key:       metafieldKeyWebsite,
				Type:      metafieldTypeText,
				Value:     website,
			})
		}
	}

	return commerce.CustomerCreateInput{
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      phone.NormalizeE164(req.PhoneNumber),
		Metafields: metafields,
	}
}
