package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// NotificationRepository defines notification persistence. Marking a
// notification read is the only mutation this core triggers, and only after
// the ownership check passes.
type NotificationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
