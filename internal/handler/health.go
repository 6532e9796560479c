package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports process liveness for load balancers and uptime
// checks. It deliberately touches no backing service.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
