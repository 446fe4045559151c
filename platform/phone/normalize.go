// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// NormalizeE164 formats a North-American phone number to E.164.
//
// All non-digit characters are stripped first. Eleven digits with a leading
// "1" get a "+" prefix; exactly ten digits get a "+1" prefix. Any other
// digit count returns "" — the caller must treat an empty result as "no
// phone available", never as a reason to abort.
//
// The candidate is additionally checked against libphonenumber's possible
// length metadata so inputs like "0000000000000000000000" cannot slip
// through the digit-count heuristic.
func NormalizeE164(input string) string {
	digits := stripNonDigits(input)

	var candidate string
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		candidate = "+" + digits
	case len(digits) == 10:
		candidate = "+1" + digits
	default:
		return ""
	}

	number, err := phonenumbers.Parse(candidate, defaultRegion)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) {
		return ""
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
