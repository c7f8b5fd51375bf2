package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/api/metrics"
	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// AdoptionHandler handles HTTP requests for adoption applications.
type AdoptionHandler struct {
	service ports.AdoptionService
}

func NewAdoptionHandler(service ports.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

type adoptionRequestBody struct {
	Housing              string `json:"vivienda"               validate:"required"`
	TimeAvailable        string `json:"tiempo"                 validate:"required"`
	CurrentPets          string `json:"mascotas_actuales"      validate:"required"`
	Experience           string `json:"experiencia"            validate:"required"`
	Reason               string `json:"motivo_adopcion"        validate:"required"`
	CareKnowledge        string `json:"conocimiento_cuidado"   validate:"required"`
	FinancialResponsible string `json:"responsable_financiero" validate:"required"`
	HousingAgreement     string `json:"acuerdo_vivienda"       validate:"required"`
	PhysicalActivity     string `json:"actividad_fisica"       validate:"required"`
	TimeCommitment       string `json:"tiempo_compromiso"      validate:"required"`
}

type decideRequestBody struct {
	State string `json:"estado" validate:"required,oneof=aprobada rechazada"`
}

// Submit handles POST /dogs/:id/adoptions. The requester's identity is taken
// from the session, never from the body.
//
// @Summary      Submit an adoption request
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Dog ID"
// @Param        body  body      adoptionRequestBody  true  "Questionnaire"
// @Success      201   {object}  object
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /dogs/{id}/adoptions [post]
func (h *AdoptionHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req adoptionRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Submit(c.Request().Context(), ports.AdoptionInput{
		UserID:   identity.ID,
		FullName: identity.FullName(),
		DogID:    c.Param("id"),
		Questionnaire: domain.Questionnaire{
			Housing:              req.Housing,
			TimeAvailable:        req.TimeAvailable,
			CurrentPets:          req.CurrentPets,
			Experience:           req.Experience,
			Reason:               req.Reason,
			CareKnowledge:        req.CareKnowledge,
			FinancialResponsible: req.FinancialResponsible,
			HousingAgreement:     req.HousingAgreement,
			PhysicalActivity:     req.PhysicalActivity,
			TimeCommitment:       req.TimeCommitment,
		},
	})
	if err != nil {
		return err
	}

	metrics.AdoptionRequestsTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /adoptions (admin only).
//
// @Summary      List adoption requests
// @Tags         adoptions
// @Produce      json
// @Success      200  {array}  object
// @Router       /adoptions [get]
func (h *AdoptionHandler) List(c echo.Context) error {
	reqs, err := h.service.ListRequests(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}

// Decide handles PATCH /adoptions/:id/state (admin only).
//
// @Summary      Approve or reject an adoption request
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Request ID"
// @Param        body  body      decideRequestBody  true  "Decision"
// @Success      200   {object}  object
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /adoptions/{id}/state [patch]
func (h *AdoptionHandler) Decide(c echo.Context) error {
	var req decideRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	decided, err := h.service.Decide(c.Request().Context(), c.Param("id"), domain.AdoptionState(req.State))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, decided)
}
