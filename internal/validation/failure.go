// Package validation implements the request validation engine: a declared
// set of rules is run exhaustively against a payload and the collected
// failures are classified into an authorization denial or a plain
// validation error.
package validation

// FailureKind distinguishes an authorization denial from a data error.
// The distinction is a type, not a reserved field name, but it changes both
// the response status and shape (403 single message vs 422 field map).
type FailureKind int

const (
	KindField FailureKind = iota
	KindDenial
)

// Failure is one rule outcome: a message registered under a field name.
type Failure struct {
	Field   string
	Message string
	Kind    FailureKind
}

// FieldFailure builds a data-error failure for field.
func FieldFailure(field, message string) Failure {
	return Failure{Field: field, Message: message, Kind: KindField}
}

// Denial builds an authorization-denial failure. Denials carry no field:
// when present, the whole request is rejected with only the denial message.
func Denial(message string) Failure {
	return Failure{Message: message, Kind: KindDenial}
}
