package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rishav-del/ai-career-path-simulator/internal/llm"
	"github.com/rishav-del/ai-career-path-simulator/internal/store"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// llmHealthChecker is the slice of the provider manager the readiness probe
// needs
type llmHealthChecker interface {
	CheckHealth(ctx context.Context) error
}

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the store and the completion provider
// are usable. The provider is re-probed on every call, so readiness recovers
// once a provider that was down at startup becomes reachable.
func ReadinessHandler(st store.Store, llmManager llmHealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if err := st.Ping(ctx); err != nil {
			checks["database"] = "unavailable"
			status = "not ready"
			code = http.StatusServiceUnavailable
		} else {
			checks["database"] = "ok"
		}

		if err := llmManager.CheckHealth(ctx); err != nil {
			checks["llm"] = "unavailable"
			status = "not ready"
			code = http.StatusServiceUnavailable
		} else {
			checks["llm"] = "ok"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":      "operational",
				"provider": llmManager.Name(),
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}
