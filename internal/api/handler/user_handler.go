package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carparts/carparts-api/internal/core/ports"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type adminResponse struct {
	Admin bool `json:"admin"`
}

// List handles GET /user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /user [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /admin/:email.
//
// @Summary      Check whether a user is an admin
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  adminResponse
// @Router       /admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	isAdmin, err := h.service.IsAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{Admin: isAdmin})
}

// Login handles PUT /user/:email: upserts the user and returns a fresh token.
//
// @Summary      Log in or register
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Param        body   body      object  true  "User fields"
// @Success      200    {object}  ports.LoginResult
// @Failure      400    {object}  map[string]string
// @Router       /user/{email} [put]
func (h *UserHandler) Login(c echo.Context) error {
	fields, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Login(c.Request().Context(), c.Param("email"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Promote handles PUT /user/admin/:email (admin only).
//
// @Summary      Grant the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  domain.UpdateResult
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /user/admin/{email} [put]
func (h *UserHandler) Promote(c echo.Context) error {
	res, err := h.service.Promote(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
