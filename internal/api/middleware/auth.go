package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// loginPath is where unauthenticated requests are sent, with an error hint in
// the query string.
const loginPath = "/login"

func loginRedirectURL() string {
	q := url.Values{}
	q.Set("error", "Debes iniciar sesión primero")
	return loginPath + "?" + q.Encode()
}

// RequireLogin gates a route on an authenticated session of any role.
// Anonymous requests are redirected to the login page and the handler is
// never invoked.
func RequireLogin() echo.MiddlewareFunc {
	redirect := loginRedirectURL()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Identity(c); !ok {
				return c.Redirect(http.StatusFound, redirect)
			}
			return next(c)
		}
	}
}
