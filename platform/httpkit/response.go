// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"fmt"
	"net/http"

	"wholesale_portal_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response with the given status code and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// PlainError sends a plain-text error response. Used by the form workflows
// whose callers are browsers posting from storefront-hosted HTML forms.
func PlainError(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// Redirect sends a 302 redirect to the given destination.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// AlertRedirect responds with an HTML snippet that shows a client-side alert
// and then navigates to the given destination. Used for validation failures
// on browser form posts, where a JSON body would render as raw text.
func AlertRedirect(c *gin.Context, message, location string) {
	body := fmt.Sprintf("<script>alert(%q);window.location.href=%q;</script>", message, location)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// HandleError maps domain errors to HTTP responses.
// If the error is a typed *apperr.Error, it uses the error's Kind to
// determine the HTTP status code. Otherwise, it defaults to 500.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok {
		c.JSON(domainErr.HTTPStatus(), ErrorResponse{Error: domainErr.Message})
		return true
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	return true
}
