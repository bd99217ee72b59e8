// Package middleware contains the Echo middleware of the HTTP delivery.
package middleware

import (
	"net/http"

	"tastebook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// userIDKey is the echo.Context key under which the authenticated user id is
// stored.
const userIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		const prefix = "Bearer "
		if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, err := m.tokenSvc.ResolveAccessToken(authHeader[len(prefix):])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set the caller's id on the context for handlers to use.
		c.Set(userIDKey, userID)

		return next(c)
	}
}

// CallerID extracts the authenticated user id set by Authenticate. The second
// return is false on routes that never passed through the middleware.
func CallerID(c echo.Context) (int64, bool) {
	id, ok := c.Get(userIDKey).(int64)

	return id, ok
}
