package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/patitas/shelter-api/internal/api/metrics"
	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// DonationHandler handles HTTP requests for donations.
type DonationHandler struct {
	service ports.DonationService
}

func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

type donationRequestBody struct {
	Amount        float64  `json:"monto"        validate:"gte=0"`
	PaymentMethod string   `json:"metodoPago"`
	Supplies      []string `json:"material"`
	SuppliesOther string   `json:"materialOtro"`
}

// Submit handles POST /donations.
//
// @Summary      Record a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      donationRequestBody  true  "Donation details"
// @Success      201   {object}  object
// @Failure      400   {object}  errorResponse
// @Router       /donations [post]
func (h *DonationHandler) Submit(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req donationRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Submit(c.Request().Context(), ports.DonationInput{
		UserID:        identity.ID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Supplies:      req.Supplies,
		SuppliesOther: req.SuppliesOther,
	})
	if err != nil {
		if err == domain.ErrEmptyDonation {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.DonationsTotal.WithLabelValues(donationKind(created)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /donations (admin only).
//
// @Summary      List donations
// @Tags         donations
// @Produce      json
// @Success      200  {array}  object
// @Router       /donations [get]
func (h *DonationHandler) List(c echo.Context) error {
	donations, err := h.service.ListDonations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donations)
}

func donationKind(d *domain.Donation) string {
	switch {
	case d.Amount > 0 && d.Supplies != "":
		return "both"
	case d.Amount > 0:
		return "money"
	default:
		return "supplies"
	}
}
