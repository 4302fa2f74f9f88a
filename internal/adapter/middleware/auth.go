package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	userDomain "scholarhub-backend/internal/domain/user"
)

const actingUserKey = "actingUser"

// Auth resolves the bearer token through the identity collaborator and
// stashes the user on the request context. Token issuance itself is the auth
// service's problem; this side only looks tokens up.
func Auth(users userDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(raw, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "missing bearer token",
					"error":   "AUTH_REQUIRED",
				})
			}

			usr, err := users.GetByToken(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "invalid token",
					"error":   "AUTH_REQUIRED",
				})
			}

			c.Set(actingUserKey, usr)
			return next(c)
		}
	}
}

// ActingUser returns the resolved user, or nil when the route skipped Auth.
func ActingUser(c echo.Context) *userDomain.User {
	usr, _ := c.Get(actingUserKey).(*userDomain.User)
	return usr
}

// SetActingUser exists for handler tests that bypass the middleware chain.
func SetActingUser(c echo.Context, usr *userDomain.User) {
	c.Set(actingUserKey, usr)
}
