// Package registration provides the customer self-registration module.
package registration

import (
	"wholesale_portal_backend/internal/events"
	apphttp "wholesale_portal_backend/internal/http"
	"wholesale_portal_backend/internal/registration/handler"
	"wholesale_portal_backend/internal/registration/service"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/validator"
)

// Module is the registration bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and wires the registration module.
func NewModule(gateway service.CommerceGateway, bus events.Bus, cfg *config.Config, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(gateway, bus, log)
	h := handler.New(svc, cfg, val, log)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "registration"
}

// RegisterRoutes mounts the registration routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Forms.POST("/register", m.handler.Register)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
