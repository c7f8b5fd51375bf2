package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// RequireRole gates a route on an authenticated session holding the required
// role. Anonymous requests redirect to login like RequireLogin; authenticated
// requests with any other role get a fixed access-denied response.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	redirect := loginRedirectURL()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return c.Redirect(http.StatusFound, redirect)
			}
			if identity.Role != required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}
