package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/api/metrics"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
	"github.com/freelancehub/marketplace-api/internal/validation"
)

type AuthHandler struct {
	authService ports.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	payload := validation.Payload{
		"email":    req.Email,
		"password": req.Password,
		"name":     req.Name,
		"role":     req.Role,
	}
	rules := []validation.Rule{
		validation.NewStructRule(&req),
		validation.PasswordRule{Field: "password"},
		// Privileged roles are provisioned out of band; asking for one is a
		// denial, not a malformed field.
		validation.DenialRule{
			Message: "You are not allowed to register with this role",
			Permit: func(_ context.Context, p validation.Payload) bool {
				role := p.String("role")
				return role != domain.RoleAdmin && role != domain.RoleSuperAdmin
			},
		},
	}

	proceed, err := runRules(c, payload, rules)
	if !proceed {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user, issues a browser session cookie and returns an
// API token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	proceed, err := runRules(c, validation.Payload{"email": req.Email, "password": req.Password},
		[]validation.Rule{validation.NewStructRule(&req)})
	if !proceed {
		return err
	}

	sessionToken, apiToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		if err == domain.ErrUserNotFound {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, authResponse{Token: apiToken, User: user})
}

// Me returns the authenticated identity. It backs the logged-in landing page
// and the API's identity probe.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, role, err := actor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"user_id": userID, "role": role})
}

// Logout deletes the session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return c.NoContent(http.StatusNoContent)
}
