package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequiredRule fails when the payload field is absent or blank.
type RequiredRule struct {
	Field string
}

func (r RequiredRule) Validate(_ context.Context, payload Payload) []Failure {
	v, ok := payload[r.Field]
	if !ok || v == nil {
		return []Failure{FieldFailure(r.Field, r.Field+" is required")}
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return []Failure{FieldFailure(r.Field, r.Field+" is required")}
	}
	return nil
}

// DenialRule rejects the whole request as an authorization denial when its
// condition does not hold. Unlike field rules it carries no field name.
type DenialRule struct {
	Message string
	// Permit reports whether the request is allowed to proceed.
	Permit func(ctx context.Context, payload Payload) bool
}

func (r DenialRule) Validate(ctx context.Context, payload Payload) []Failure {
	if r.Permit != nil && r.Permit(ctx, payload) {
		return nil
	}
	return []Failure{Denial(r.Message)}
}

// StructRule validates an already-bound request struct with
// go-playground/validator tags and converts each tag failure into a field
// failure with a readable message.
type StructRule struct {
	v      *validator.Validate
	target any
}

// NewStructRule wraps target, a pointer to a tagged request struct.
func NewStructRule(target any) StructRule {
	return StructRule{v: validator.New(), target: target}
}

func (r StructRule) Validate(_ context.Context, _ Payload) []Failure {
	err := r.v.Struct(r.target)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []Failure{FieldFailure("request", "request failed validation")}
	}

	failures := make([]Failure, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		failures = append(failures, FieldFailure(field, tagMessage(field, fe)))
	}
	return failures
}

// tagMessage converts a single validator tag failure into a human-readable
// message.
func tagMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
