package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// AuthService covers registration, login and logout. Login returns the opaque
// session token for browser clients and a signed JWT for API clients.
type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (sessionToken, apiToken string, user *domain.User, err error)
	Logout(ctx context.Context, sessionToken string) error
}
