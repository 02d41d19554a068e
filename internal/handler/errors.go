package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// internalError logs the underlying failure and answers with a generic 500.
// Store and driver messages never reach the client.
func internalError(err error) *echo.HTTPError {
	log.Printf("[HTTP] internal error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "error interno del servidor")
}
