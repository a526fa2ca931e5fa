package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// UserRepository defines user persistence as consumed by the access core.
// The core only ever reads users; creation happens through registration.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
