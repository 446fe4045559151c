// Package taxexempt provides the tax-exempt document upload module.
package taxexempt

import (
	"wholesale_portal_backend/internal/events"
	apphttp "wholesale_portal_backend/internal/http"
	"wholesale_portal_backend/internal/taxexempt/handler"
	"wholesale_portal_backend/internal/taxexempt/service"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/validator"
)

// Module is the tax-exempt bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and wires the tax-exempt module.
func NewModule(gateway service.CommerceGateway, relay service.Transferer, bus events.Bus, cfg *config.Config, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(gateway, relay, bus, log)
	h := handler.New(svc, cfg, val, log)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "taxexempt"
}

// RegisterRoutes mounts the upload routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Forms.POST("/upload", m.handler.Upload)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
