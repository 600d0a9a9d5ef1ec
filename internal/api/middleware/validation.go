package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
	"github.com/rishav-del/ai-career-path-simulator/pkg/utils"
)

// RequestValidation middleware assigns a request ID and caps POST body size
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > 1024*1024 { // 1MB limit
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Message: "Request body too large",
					})
				}
			}

			return next(c)
		}
	}
}
