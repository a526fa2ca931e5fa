package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// notAuthenticated is the fixed envelope for the unauthenticated API case.
// Clients parse the message; treat as contract.
var notAuthenticated = map[string]string{"errors": "You are not authenticated"}

// Auth validates the bearer JWT on api-class routes and injects its claims
// into the echo context. The session gate deliberately skips api routes; this
// middleware is their authentication boundary.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, notAuthenticated)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, notAuthenticated)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return c.JSON(http.StatusUnauthorized, notAuthenticated)
			}

			if userID, ok := claims["user_id"].(string); ok {
				c.Set("user_id", userID)
			}
			if role, ok := claims["role"].(string); ok {
				c.Set("role", role)
			}

			return next(c)
		}
	}
}
