package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) HealthCheck(ctx echo.Context) error {
	type response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Version string `json:"version"`
	}

	return ctx.JSON(http.StatusOK, response{
		Success: true,
		Message: "API is running",
		Version: "1.0.0",
	})
}
