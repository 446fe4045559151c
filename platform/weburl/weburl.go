// Package weburl provides website address normalization and validation.
// This is part of the platform layer and contains no business logic.
package weburl

import (
	"regexp"
	"strings"
)

// validPattern accepts ftp, http and https URLs with no embedded whitespace
// or double-quote character. The website ends up inside storefront markup
// upstream, so quote characters are rejected outright.
var validPattern = regexp.MustCompile(`^(ftp|http|https)://[^\s"]+$`)

// Normalize prepends "http://" when the raw address lacks a scheme
// separator. No further cleanup happens here; Validate is the gate.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if !strings.Contains(trimmed, "://") {
		return "http://" + trimmed
	}
	return trimmed
}

// Validate reports whether the address is safe to attach as customer
// metadata. Invalid addresses are silently omitted by callers, never a
// reason to fail the request.
func Validate(url string) bool {
	return validPattern.MatchString(url)
}
