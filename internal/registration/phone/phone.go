// Package phone normalizes Kenyan mobile numbers to E.164.
package phone

import (
	"regexp"
	"strings"

	dErrors "sokoni/pkg/domain-errors"
)

var e164Pattern = regexp.MustCompile(`^\+254[17]\d{8}$`)

// Normalize converts the accepted local formats to E.164 (+254...).
// Accepted inputs: 07XXXXXXXX, 01XXXXXXXX, 7XXXXXXXX, 1XXXXXXXX,
// 2547XXXXXXXX, 2541XXXXXXXX and the already-normalized +254 forms.
// Whitespace and dashes are stripped first.
func Normalize(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "phone number cannot be empty")
	}

	var candidate string
	switch {
	case strings.HasPrefix(cleaned, "+254"):
		candidate = cleaned
	case strings.HasPrefix(cleaned, "254"):
		candidate = "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		candidate = "+254" + cleaned[1:]
	default:
		candidate = "+254" + cleaned
	}

	if !e164Pattern.MatchString(candidate) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "phone number %q is not a valid Kenyan mobile number", raw)
	}
	return candidate, nil
}

// IsValid reports whether raw normalizes to a valid number.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
