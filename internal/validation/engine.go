package validation

import "context"

// Payload is the request body as seen by rules: field name to submitted value.
type Payload map[string]any

// String returns the payload value for field when it is a string.
func (p Payload) String(field string) string {
	s, _ := p[field].(string)
	return s
}

// Rule validates one concern against the payload and returns zero or more
// failures. Rules must be exhaustive: report every unmet requirement, not
// just the first.
type Rule interface {
	Validate(ctx context.Context, payload Payload) []Failure
}

// Outcome is the classified result of running a rule set.
type Outcome struct {
	denialMessage string
	denied        bool
	fields        map[string][]string
	order         []string
}

// OK reports whether no rule failed.
func (o Outcome) OK() bool {
	return !o.denied && len(o.fields) == 0
}

// Denied returns the denial message when the failure set contains an
// authorization denial. Only the first registered denial message survives.
func (o Outcome) Denied() (string, bool) {
	return o.denialMessage, o.denied
}

// FieldErrors returns every failing field with all of its accumulated
// messages, in registration order per field.
func (o Outcome) FieldErrors() map[string][]string {
	return o.fields
}

// Fields returns the failing field names in first-failure order.
func (o Outcome) Fields() []string {
	return o.order
}

// Run evaluates every rule against payload. Rules are never short-circuited:
// all of them run to completion before the failure set is classified, so a
// client receives the complete picture in one pass.
func Run(ctx context.Context, payload Payload, rules []Rule) Outcome {
	out := Outcome{fields: make(map[string][]string)}

	for _, rule := range rules {
		for _, f := range rule.Validate(ctx, payload) {
			if f.Kind == KindDenial {
				if !out.denied {
					out.denied = true
					out.denialMessage = f.Message
				}
				continue
			}
			if _, seen := out.fields[f.Field]; !seen {
				out.order = append(out.order, f.Field)
			}
			out.fields[f.Field] = append(out.fields[f.Field], f.Message)
		}
	}

	return out
}
