package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/rishav-del/ai-career-path-simulator/internal/api/handlers"
	"github.com/rishav-del/ai-career-path-simulator/internal/api/middleware"
	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/llm"
	"github.com/rishav-del/ai-career-path-simulator/internal/simulation"
	"github.com/rishav-del/ai-career-path-simulator/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, st store.Store, llmManager *llm.Manager, svc *simulation.Service) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// The generation endpoint blocks on the provider call and its retry, so
	// it gets headroom beyond the provider deadline
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*cfg.LLM.Timeout+cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(st, llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// Simulation routes
	api := e.Group("/api")
	{
		api.POST("/simulations", handlers.CreateSimulationHandler(cfg, svc))
		api.GET("/simulations", handlers.ListSimulationsHandler(st))
		api.GET("/simulations/:id", handlers.GetSimulationHandler(st))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "AI Career Path Simulator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
