package commerce

import (
	"fmt"
	"strings"
)

// UserError is a mutation-level error reported by the back office.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// GatewayError carries the raw error list from a failed gateway call so it
// can be logged verbatim. The orchestrating service decides whether the
// failure aborts its workflow.
type GatewayError struct {
	Operation  string
	Status     int
	Messages   []string
	UserErrors []UserError
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	parts := make([]string, 0, len(e.Messages)+len(e.UserErrors))
	parts = append(parts, e.Messages...)
	for _, ue := range e.UserErrors {
		if len(ue.Field) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(ue.Field, "."), ue.Message))
		} else {
			parts = append(parts, ue.Message)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("commerce %s failed (status %d)", e.Operation, e.Status)
	}
	return fmt.Sprintf("commerce %s failed: %s", e.Operation, strings.Join(parts, "; "))
}

// userErrorsToGatewayError wraps a populated userErrors list; returns nil
// when the list is empty.
func userErrorsToGatewayError(operation string, userErrors []UserError) *GatewayError {
	if len(userErrors) == 0 {
		return nil
	}
	return &GatewayError{Operation: operation, UserErrors: userErrors}
}
