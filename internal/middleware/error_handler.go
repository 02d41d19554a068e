package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
)

// ErrorHandler renders every error as {"status":"ERROR","message":...} with
// the HTTP code the handler chose. Errors no handler mapped become a generic
// 500; their detail stays in the log, never in the response.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "error interno del servidor"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	} else {
		log.Printf("[HTTP] unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	_ = c.JSON(code, dto.ErrorResponse{Status: "ERROR", Message: msg})
}
