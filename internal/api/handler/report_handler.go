package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/api/metrics"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for abuse reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportRequestBody struct {
	AbuseType     string   `json:"tipoDeMaltrato" validate:"required"`
	IncidentDate  string   `json:"fecha"          validate:"required"`
	Evidence      []string `json:"pruebas"`
	EvidenceOther string   `json:"pruebasOtro"`
}

// Submit handles POST /reports.
//
// @Summary      File an abuse report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      reportRequestBody  true  "Report details"
// @Success      201   {object}  object
// @Failure      400   {object}  errorResponse
// @Router       /reports [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req reportRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	incidentDate, err := time.Parse("2006-01-02", req.IncidentDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "fecha must be a valid date (YYYY-MM-DD)"})
	}

	created, err := h.service.Submit(c.Request().Context(), ports.ReportInput{
		UserID:        identity.ID,
		AbuseType:     req.AbuseType,
		IncidentDate:  incidentDate,
		Evidence:      req.Evidence,
		EvidenceOther: req.EvidenceOther,
	})
	if err != nil {
		return err
	}

	metrics.AbuseReportsTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /reports (admin only).
//
// @Summary      List abuse reports
// @Tags         reports
// @Produce      json
// @Success      200  {array}  object
// @Router       /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}
