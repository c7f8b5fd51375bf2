package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/api/metrics"
	"github.com/patitas/shelter-api/internal/api/middleware"
	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and session introspection.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, sessions: sessions, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Name            string `json:"nombre"           validate:"required"`
	PaternalSurname string `json:"apellido_paterno" validate:"required"`
	MaternalSurname string `json:"apellido_materno" validate:"required"`
	Street          string `json:"calle"            validate:"required"`
	Neighborhood    string `json:"colonia"          validate:"required"`
	City            string `json:"ciudad"           validate:"required"`
	ZipCode         string `json:"codigo_postal"    validate:"required"`
	Phone           string `json:"telefono"         validate:"required"`
	Email           string `json:"correo"           validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"correo"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User domain.SessionIdentity `json:"user"`
}

// Register creates a user account and opens a session for it, mirroring the
// original flow where a new user lands directly on the menu.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	// Friendly duplicate check. The unique index on correo covers the window
	// between this check and the insert.
	exists, err := h.authService.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
	}

	user, err := h.authService.Register(ctx, ports.RegisterInput{
		Name:            req.Name,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		Street:          req.Street,
		Neighborhood:    req.Neighborhood,
		City:            req.City,
		ZipCode:         req.ZipCode,
		Phone:           req.Phone,
		Email:           req.Email,
		Password:        req.Password,
	})
	if err != nil {
		if err == domain.ErrEmailTaken {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()

	identity := domain.IdentityFromUser(user)
	if err := h.openSession(c, identity); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sessionResponse{User: identity})
}

// Login verifies credentials against both principal collections and opens a
// session. All credential failures produce the same 401 body, so the response
// never reveals whether the email exists.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("failure", "none").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "incorrect email or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success", string(identity.Role)).Inc()

	if err := h.openSession(c, *identity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: *identity})
}

// Logout destroys the session and sends the browser back to the login page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Delete(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// Me returns the current session identity.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// openSession persists the identity and sets the session cookie. The cookie
// is HTTP-only and SameSite Lax; Secure stays off because deployments sit
// behind plain HTTP today.
func (h *AuthHandler) openSession(c echo.Context, identity domain.SessionIdentity) error {
	token, err := h.sessions.Create(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
