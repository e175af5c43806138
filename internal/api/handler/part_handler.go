package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/ports"
)

// PartHandler handles HTTP requests for catalog parts.
type PartHandler struct {
	service ports.PartService
}

func NewPartHandler(service ports.PartService) *PartHandler {
	return &PartHandler{service: service}
}

// List handles GET /part.
//
// @Summary      List all parts
// @Tags         parts
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  map[string]string
// @Router       /part [get]
func (h *PartHandler) List(c echo.Context) error {
	parts, err := h.service.ListParts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, parts)
}

// Get handles GET /part/:id. An unknown id yields 200 with an empty body.
//
// @Summary      Get a part
// @Tags         parts
// @Produce      json
// @Param        id   path      string  true  "Part id"
// @Success      200  {object}  object
// @Failure      400  {object}  map[string]string
// @Router       /part/{id} [get]
func (h *PartHandler) Get(c echo.Context) error {
	part, err := h.service.GetPart(c.Request().Context(), c.Param("id"))
	return sendDocument(c, part, err)
}

// Create handles POST /part (admin only).
//
// @Summary      Add a part
// @Tags         parts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Part fields"
// @Success      200   {object}  domain.InsertResult
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /part [post]
func (h *PartHandler) Create(c echo.Context) error {
	part, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.CreatePart(c.Request().Context(), part)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /part/:id (admin only).
//
// @Summary      Delete a part
// @Tags         parts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Part id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /part/{id} [delete]
func (h *PartHandler) Delete(c echo.Context) error {
	res, err := h.service.DeletePart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateQuantity handles PUT /part/:id with {"deliveredQuantity": N}.
//
// @Summary      Set the stocked quantity of a part
// @Description  Creates the part when the id does not exist.
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Part id"
// @Param        body  body      object  true  "{deliveredQuantity}"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  map[string]string
// @Router       /part/{id} [put]
func (h *PartHandler) UpdateQuantity(c echo.Context) error {
	body, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.UpdateQuantity(c.Request().Context(), c.Param("id"), body["deliveredQuantity"])
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
