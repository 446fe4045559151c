// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"wholesale_portal_backend/platform/events"
	"wholesale_portal_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Registration Domain Events
// =============================================================================

// CustomerRegistered is published after a wholesale customer has been
// created on the back office and an account activation URL was minted.
type CustomerRegistered struct {
	BaseEvent
	CustomerID    string `json:"customerId"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	CompanyName   string `json:"companyName"`
	ActivationURL string `json:"activationUrl"`
}

func (e CustomerRegistered) EventName() string { return "registration.customer.registered" }

// =============================================================================
// Tax-Exempt Domain Events
// =============================================================================

// TaxExemptFormLinked is published after an uploaded tax-exempt document has
// been registered on the back office and cross-referenced to the customer.
type TaxExemptFormLinked struct {
	BaseEvent
	CustomerID  string `json:"customerId"`
	CompanyName string `json:"companyName"`
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
}

func (e TaxExemptFormLinked) EventName() string { return "taxexempt.form.linked" }
