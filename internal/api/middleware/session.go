package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "shelter_session"

// identityKey is the echo context key the loaded identity lives under.
const identityKey = "identity"

// Session resolves the session cookie to an identity and injects it into the
// request context. It never blocks a request: routes decide with RequireLogin
// or RequireRole. A missing, expired, or tampered token simply leaves the
// request anonymous.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, *identity)
			return next(c)
		}
	}
}

// Identity returns the session identity loaded by Session, if any.
func Identity(c echo.Context) (domain.SessionIdentity, bool) {
	identity, ok := c.Get(identityKey).(domain.SessionIdentity)
	return identity, ok
}

// SetIdentity injects an identity directly. Intended for tests.
func SetIdentity(c echo.Context, identity domain.SessionIdentity) {
	c.Set(identityKey, identity)
}
