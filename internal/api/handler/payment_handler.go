package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

// PaymentHandler handles payment intent creation.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a card payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentIntentRequest  true  "Price in major units"
// @Success      200   {object}  createPaymentIntentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidPayload
	}

	secret, err := h.service.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createPaymentIntentResponse{ClientSecret: secret})
}
