package validation

import (
	"context"
	"strings"
	"unicode"
)

// Fixed password-policy messages. Clients parse these; treat as contract.
const (
	MsgPasswordLength  = "password must be at least 8 characters"
	MsgPasswordLower   = "password must contain a lowercase letter"
	MsgPasswordUpper   = "password must contain an uppercase letter"
	MsgPasswordDigit   = "password must contain a digit"
	MsgPasswordSpecial = "password must contain a special character"
)

const minPasswordLength = 8

// passwordSpecialChars is the fixed set satisfying the special-character
// predicate.
const passwordSpecialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"

// PasswordRule evaluates the composite password-strength policy. All five
// predicates run unconditionally so the caller can present the complete list
// of unmet requirements in one pass.
type PasswordRule struct {
	Field string
}

func (r PasswordRule) Validate(_ context.Context, payload Payload) []Failure {
	password := payload.String(r.Field)

	var failures []Failure
	add := func(ok bool, message string) {
		if !ok {
			failures = append(failures, FieldFailure(r.Field, message))
		}
	}

	add(len(password) >= minPasswordLength, MsgPasswordLength)
	add(strings.ContainsFunc(password, unicode.IsLower), MsgPasswordLower)
	add(strings.ContainsFunc(password, unicode.IsUpper), MsgPasswordUpper)
	add(strings.ContainsFunc(password, unicode.IsDigit), MsgPasswordDigit)
	add(strings.ContainsAny(password, passwordSpecialChars), MsgPasswordSpecial)

	return failures
}
