package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	err     error
	lookups int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func TestRoleRule_MatchingRolePasses(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "9", Role: domain.RoleProvider})
	rule := RoleRule{Field: "provider_id", Users: repo, Satisfies: IsProvider()}

	failures := rule.Validate(context.Background(), Payload{"provider_id": "9"})
	if len(failures) != 0 {
		t.Fatalf("expected pass, got %v", failures)
	}
	if repo.lookups != 1 {
		t.Fatalf("expected exactly one lookup, got %d", repo.lookups)
	}
}

func TestRoleRule_UnknownUserFails(t *testing.T) {
	repo := newStubUserRepo()
	rule := RoleRule{Field: "provider_id", Users: repo, Satisfies: IsProvider()}

	failures := rule.Validate(context.Background(), Payload{"provider_id": "404"})
	if len(failures) != 1 || failures[0].Message != MsgUserNotFound {
		t.Fatalf("got %v, want %q", failures, MsgUserNotFound)
	}
	if failures[0].Field != "provider_id" {
		t.Fatalf("failure registered under %q, want provider_id", failures[0].Field)
	}
	if failures[0].Kind != KindField {
		t.Fatalf("role-binding failures are data errors, not denials")
	}
}

func TestRoleRule_MismatchedRoleFails(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "9", Role: domain.RoleCompany})
	rule := RoleRule{Field: "provider_id", Users: repo, Satisfies: IsProvider()}

	failures := rule.Validate(context.Background(), Payload{"provider_id": "9"})
	if len(failures) != 1 || failures[0].Message != MsgUserRoleInvalid {
		t.Fatalf("got %v, want %q", failures, MsgUserRoleInvalid)
	}
}

func TestRoleRule_ExactRole(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "3", Role: domain.RoleSuperAdmin})
	rule := RoleRule{Field: "admin_id", Users: repo, Satisfies: ExactRole(domain.RoleSuperAdmin)}

	if failures := rule.Validate(context.Background(), Payload{"admin_id": "3"}); len(failures) != 0 {
		t.Fatalf("expected pass, got %v", failures)
	}

	rule.Satisfies = ExactRole(domain.RoleAdmin)
	failures := rule.Validate(context.Background(), Payload{"admin_id": "3"})
	if len(failures) != 1 || failures[0].Message != MsgUserRoleInvalid {
		t.Fatalf("got %v, want %q", failures, MsgUserRoleInvalid)
	}
}

func TestRoleRule_LookupErrorFailsClosed(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "9", Role: domain.RoleProvider})
	repo.err = errors.New("mongo: server selection timeout")
	rule := RoleRule{Field: "provider_id", Users: repo, Satisfies: IsProvider()}

	failures := rule.Validate(context.Background(), Payload{"provider_id": "9"})
	if len(failures) != 1 || failures[0].Message != MsgUserNotFound {
		t.Fatalf("lookup error must fail closed, got %v", failures)
	}
}
