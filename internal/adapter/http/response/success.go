package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Flights int    `json:"flights"`
}

// Health writes a health check response with the number of loaded flights.
func Health(c echo.Context, flights int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Flights: flights,
	})
}
