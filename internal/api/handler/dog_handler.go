package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/core/ports"
)

// DogHandler handles HTTP requests for the dog catalog.
type DogHandler struct {
	service ports.DogService
}

func NewDogHandler(service ports.DogService) *DogHandler {
	return &DogHandler{service: service}
}

// List handles GET /dogs.
//
// @Summary      List adoptable dogs
// @Tags         dogs
// @Produce      json
// @Success      200  {array}  object
// @Router       /dogs [get]
func (h *DogHandler) List(c echo.Context) error {
	dogs, err := h.service.ListDogs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dogs)
}

// Get handles GET /dogs/:id.
//
// @Summary      Get a dog by ID
// @Tags         dogs
// @Produce      json
// @Param        id   path      string  true  "Dog ID"
// @Success      200  {object}  object
// @Failure      404  {object}  map[string]string
// @Router       /dogs/{id} [get]
func (h *DogHandler) Get(c echo.Context) error {
	dog, err := h.service.GetDog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}

// Create handles POST /dogs (admin only).
//
// @Summary      Add a dog to the catalog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Param        body  body      dogRequest  true  "Dog details"
// @Success      201   {object}  object
// @Failure      400   {object}  map[string]string
// @Router       /dogs [post]
func (h *DogHandler) Create(c echo.Context) error {
	var req dogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	dog, err := h.service.AddDog(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dog)
}

// Update handles PUT /dogs/:id (admin only).
//
// @Summary      Update a dog
// @Tags         dogs
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "Dog ID"
// @Param        body  body      dogRequest  true  "Dog details"
// @Success      200   {object}  object
// @Failure      404   {object}  map[string]string
// @Router       /dogs/{id} [put]
func (h *DogHandler) Update(c echo.Context) error {
	var req dogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	dog, err := h.service.UpdateDog(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dog)
}
