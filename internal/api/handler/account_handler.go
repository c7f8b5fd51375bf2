package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// AccountHandler handles the admin user-management routes.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type updateUserRequest struct {
	Name            string `json:"nombre"           validate:"required"`
	PaternalSurname string `json:"apellido_paterno" validate:"required"`
	MaternalSurname string `json:"apellido_materno" validate:"required"`
	Street          string `json:"calle"            validate:"required"`
	Neighborhood    string `json:"colonia"          validate:"required"`
	City            string `json:"ciudad"           validate:"required"`
	ZipCode         string `json:"codigo_postal"    validate:"required"`
	Phone           string `json:"telefono"         validate:"required"`
	Email           string `json:"correo"           validate:"required,email"`
}

type userStateRequest struct {
	Active *bool `json:"activo" validate:"required"`
}

// List handles GET /users (admin only), ordered by name like the original
// management view.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  object
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PUT /users/:id (admin only). Password and activo are not
// editable here.
//
// @Summary      Edit a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  object
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UserProfileUpdate{
		Name:            req.Name,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		Address: domain.Address{
			Street:       req.Street,
			Neighborhood: req.Neighborhood,
			City:         req.City,
			ZipCode:      req.ZipCode,
		},
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetState handles PATCH /users/:id/state (admin only): toggles activo.
//
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "User ID"
// @Param        body  body      userStateRequest  true  "New state"
// @Success      200   {object}  object
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/state [patch]
func (h *AccountHandler) SetState(c echo.Context) error {
	var req userStateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.SetUserActive(c.Request().Context(), c.Param("id"), *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
