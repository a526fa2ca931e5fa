package validation

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// Fixed role-binding messages. Clients parse these; treat as contract.
const (
	MsgUserNotFound    = "user does not exist"
	MsgUserRoleInvalid = "user does not hold the required role"
)

// RolePredicate decides whether a resolved user satisfies a role requirement.
type RolePredicate func(*domain.User) bool

// ExactRole matches a single role value.
func ExactRole(role string) RolePredicate {
	return func(u *domain.User) bool { return u.Role == role }
}

// IsProvider is the broader "can act as a provider" capability.
func IsProvider() RolePredicate {
	return func(u *domain.User) bool { return u.IsProvider() }
}

// IsCompany is the "can act on behalf of a company" capability.
func IsCompany() RolePredicate {
	return func(u *domain.User) bool { return u.IsCompany() }
}

// RoleRule checks that the user referenced by a payload field exists and
// satisfies a role predicate. Its failures are data-integrity errors about a
// submitted reference, not authorization denials, so they register under the
// rule's own field. A lookup error resolves as "does not exist" (fail closed).
// Exactly one user lookup per invocation.
type RoleRule struct {
	Field     string
	Users     ports.UserRepository
	Satisfies RolePredicate
}

func (r RoleRule) Validate(ctx context.Context, payload Payload) []Failure {
	id := payload.String(r.Field)

	user, err := r.Users.FindByID(ctx, id)
	if err != nil || user == nil {
		return []Failure{FieldFailure(r.Field, MsgUserNotFound)}
	}
	if !r.Satisfies(user) {
		return []Failure{FieldFailure(r.Field, MsgUserRoleInvalid)}
	}
	return nil
}
