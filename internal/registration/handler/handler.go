// Package handler exposes the registration workflow over HTTP.
package handler

import (
	"context"

	"wholesale_portal_backend/internal/registration/transport"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/httpkit"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Registrar runs the registration workflow. Satisfied by service.Service.
type Registrar interface {
	Register(ctx context.Context, req transport.RegisterRequest)
}

// Handler handles the public registration form post.
type Handler struct {
	svc Registrar
	cfg config.RedirectConfig
	val *validator.Validator
	log *logger.Logger
}

// New creates the registration handler.
func New(svc Registrar, cfg config.RedirectConfig, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, val: val, log: log}
}

// Register handles POST /register. The caller is a storefront form: it is
// always redirected to the fixed success destination, whatever happened
// against the back office. Malformed or incomplete submissions are logged
// and dropped without running the workflow.
func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warn("registration: unparseable submission", "error", err.Error())
		httpkit.Redirect(c, h.cfg.GetSuccessRedirectURL())
		return
	}
	if err := h.val.Struct(req); err != nil {
		h.log.Warn("registration: submission missing email", "error", err.Error())
		httpkit.Redirect(c, h.cfg.GetSuccessRedirectURL())
		return
	}

	h.svc.Register(c.Request.Context(), req)

	httpkit.Redirect(c, h.cfg.GetSuccessRedirectURL())
}
