package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/validation"
)

// denialResponse is the 403 envelope: a single message, all field failures
// suppressed.
type denialResponse struct {
	Errors string `json:"errors"`
}

// validationResponse is the 422 envelope: every failing field with all of its
// messages.
type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

// runRules evaluates the rule set at the request boundary and, on failure,
// writes the classified response. proceed is true only when every rule
// passed; the handler must not touch the payload otherwise.
func runRules(c echo.Context, payload validation.Payload, rules []validation.Rule) (proceed bool, err error) {
	out := validation.Run(c.Request().Context(), payload, rules)

	if msg, denied := out.Denied(); denied {
		metrics.ValidationOutcomesTotal.WithLabelValues("denied").Inc()
		return false, c.JSON(http.StatusForbidden, denialResponse{Errors: msg})
	}
	if !out.OK() {
		metrics.ValidationOutcomesTotal.WithLabelValues("invalid").Inc()
		return false, c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: out.FieldErrors()})
	}

	metrics.ValidationOutcomesTotal.WithLabelValues("ok").Inc()
	return true, nil
}
