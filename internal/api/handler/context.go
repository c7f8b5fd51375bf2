package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/api/middleware"
	"github.com/patitas/shelter-api/internal/core/domain"
)

// ctxIdentity extracts the session identity injected by the Session
// middleware. Handlers behind RequireLogin/RequireRole always find one; the
// 401 here only fires when a handler is wired without its gate.
func ctxIdentity(c echo.Context) (domain.SessionIdentity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.SessionIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return identity, nil
}
