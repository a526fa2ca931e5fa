package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ProjectRepository defines project persistence reached through simple CRUD.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
}
