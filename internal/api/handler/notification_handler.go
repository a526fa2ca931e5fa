package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/access"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// NotificationHandler handles notification endpoints. Only the addressed user
// may mark a notification read.
type NotificationHandler struct {
	notifications ports.NotificationRepository
}

func NewNotificationHandler(notifications ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// MarkRead marks a notification as read after the ownership check.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actorID, _, err := actor(c)
	if err != nil {
		return err
	}

	notification, err := h.notifications.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	if !access.OwnedBy(actorID, notification.UserID) {
		return domain.ErrForbidden
	}

	if err := h.notifications.MarkRead(c.Request().Context(), notification.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
