package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies the standard timeout to most endpoints and
// a longer one to the generation endpoint, which blocks on the completion
// provider.
func SelectiveTimeoutConfig(standard, generation time.Duration) echo.MiddlewareFunc {
	isGeneration := func(c echo.Context) bool {
		return c.Request().Method == http.MethodPost && c.Path() == "/api/simulations"
	}

	standardTimeout := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: standard,
		Skipper: isGeneration,
	})
	generationTimeout := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: generation,
		Skipper: func(c echo.Context) bool { return !isGeneration(c) },
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return standardTimeout(generationTimeout(next))
	}
}
