// Package handler exposes the tax-exempt upload workflow over HTTP.
package handler

import (
	"context"
	"io"
	"net/http"

	"wholesale_portal_backend/internal/taxexempt/service"
	"wholesale_portal_backend/internal/taxexempt/transport"
	"wholesale_portal_backend/platform/apperr"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/httpkit"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// fileField is the multipart field name the storefront form uses.
const fileField = "tax_exempt_form"

// maxUploadBytes caps the document size. Tax certificates are one or two
// pages; anything larger is a mistake or abuse.
const maxUploadBytes = 20 << 20

// feedbackCookie tells the storefront to show the "form received" banner
// after the redirect.
const (
	feedbackCookieName   = "tax_form_uploaded"
	feedbackCookieMaxAge = 120
)

// UploadProcessor runs the upload workflow. Satisfied by service.Service.
type UploadProcessor interface {
	ProcessUpload(ctx context.Context, input service.UploadInput) (*service.UploadResult, error)
}

// Handler handles the public upload form post.
type Handler struct {
	svc UploadProcessor
	cfg config.RedirectConfig
	val *validator.Validator
	log *logger.Logger
}

// New creates the upload handler.
func New(svc UploadProcessor, cfg config.RedirectConfig, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, val: val, log: log}
}

// Upload handles POST /upload. The caller is a browser posting a multipart
// storefront form, so validation failures answer with an alert+redirect
// snippet rather than JSON. Remote failures are a plain 500: the workflow's
// side effects are not replayable and the customer must be told to retry.
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var form transport.UploadForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn("upload: unparseable submission", "error", err.Error())
		httpkit.AlertRedirect(c, "Submission could not be read. Please try again.", h.cfg.GetSuccessRedirectURL())
		return
	}
	if err := h.val.Struct(form); err != nil {
		h.log.Warn("upload: submission missing customer fields", "error", err.Error())
		httpkit.AlertRedirect(c, "Missing customer information. Please try again.", h.cfg.GetSuccessRedirectURL())
		return
	}

	fileHeader, err := c.FormFile(fileField)
	if err != nil {
		h.log.Warn("upload: no file attached", "error", err.Error())
		httpkit.AlertRedirect(c, "No file was attached. Please choose a file and try again.", h.cfg.GetSuccessRedirectURL())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("upload: failed to open attached file", "error", err.Error())
		httpkit.PlainError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("upload: failed to read attached file", "error", err.Error())
		httpkit.PlainError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	result, err := h.svc.ProcessUpload(c.Request.Context(), service.UploadInput{
		CustomerID:  form.CustomerID,
		CompanyName: form.CompanyName,
		FileName:    fileHeader.Filename,
		FileBytes:   fileBytes,
	})
	if err != nil {
		if appErr, ok := err.(*apperr.Error); ok && appErr.Kind == apperr.KindValidation {
			httpkit.AlertRedirect(c, appErr.Message, h.cfg.GetSuccessRedirectURL())
			return
		}
		httpkit.PlainError(c, http.StatusInternalServerError, "Upload failed. Please try again later.")
		return
	}

	h.log.Info("upload accepted", "fileId", result.FileID)

	c.SetCookie(feedbackCookieName, "1", feedbackCookieMaxAge, "/", "", false, false)
	httpkit.Redirect(c, h.cfg.GetSuccessRedirectURL())
}
