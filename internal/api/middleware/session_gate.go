package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/access"
	"github.com/freelancehub/marketplace-api/internal/api/metrics"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

// SessionGate classifies every request path and gates it on session validity.
// Allowed requests continue with the session's user_id and role injected into
// the echo context; everything else is answered with a redirect.
//
// routes must be the same table the gatekeeper was built with; it is only
// consulted for the metric label.
func SessionGate(gate *access.Gatekeeper, routes *access.RouteTable) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			token := ""
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}

			decision := gate.Check(c.Request().Context(), path, token)

			verdict := "allow"
			if !decision.Allow {
				verdict = "redirect"
			}
			metrics.GateDecisionsTotal.WithLabelValues(routes.Classify(path).String(), verdict).Inc()

			if !decision.Allow {
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			if decision.Session != nil {
				c.Set("user_id", decision.Session.UserID)
				c.Set("role", decision.Session.Role)
			}
			return next(c)
		}
	}
}
