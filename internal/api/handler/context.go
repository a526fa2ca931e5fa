package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// actor extracts the authenticated identity injected by the session gate or
// the bearer-token middleware. A missing user_id means no authenticated
// session backed this request; the central error handler turns the sentinel
// into the 401 envelope.
func actor(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", domain.ErrNotAuthenticated
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}
