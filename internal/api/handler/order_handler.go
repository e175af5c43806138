package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /ordered?client=X.
//
// @Summary      List the orders of a client
// @Tags         orders
// @Produce      json
// @Param        client  query     string  true  "Client reference"
// @Success      200     {array}   object
// @Router       /ordered [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context(), c.QueryParam("client"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /ordered/:id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  object
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /ordered/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	return sendDocument(c, order, err)
}

// Create handles POST /ordered.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Order fields"
// @Success      200   {object}  domain.InsertResult
// @Router       /ordered [post]
func (h *OrderHandler) Create(c echo.Context) error {
	order, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.CreateOrder(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// MarkPaid handles PATCH /ordered/:id: stores the payment body and flags the
// order as paid.
//
// @Summary      Record a payment and mark the order paid
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Order id"
// @Param        body  body      object  true  "Payment with transactionId"
// @Success      200   {object}  domain.MarkPaidResult
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /ordered/{id} [patch]
func (h *OrderHandler) MarkPaid(c echo.Context) error {
	payment, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.MarkPaid(c.Request().Context(), c.Param("id"), payment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
