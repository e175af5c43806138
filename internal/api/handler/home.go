package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const greeting = "Hello From Car Parts Manufacture"

// Home handles GET /.
func Home(c echo.Context) error {
	return c.String(http.StatusOK, greeting)
}
