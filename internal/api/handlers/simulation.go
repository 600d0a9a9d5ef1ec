package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/logging"
	"github.com/rishav-del/ai-career-path-simulator/internal/simulation"
	"github.com/rishav-del/ai-career-path-simulator/internal/store"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
	"github.com/rishav-del/ai-career-path-simulator/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations using json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateSimulationHandler handles POST /api/simulations
func CreateSimulationHandler(cfg *config.Config, svc *simulation.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := c.Get("request_id").(string)
		logger := logging.LogWithRequestID(requestID)

		var profile models.Profile
		if err := c.Bind(&profile); err != nil {
			logger.Warn("Failed to bind simulation request", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Message: "Invalid input",
				Details: []string{"request body must be a JSON object"},
			})
		}

		if err := validate.Struct(&profile); err != nil {
			cerr := utils.NewValidationError(err.Error())
			logger.Warn("Simulation request validation failed", map[string]interface{}{
				"error": cerr.Error(),
			})
			return c.JSON(cerr.Code, models.ErrorResponse{
				Message: cerr.Message,
				Details: validationDetails(err),
			})
		}

		sim, err := svc.Generate(c.Request().Context(), profile)
		if err != nil {
			// Provider and store detail stays server-side
			var cerr *utils.CustomError
			if errors.Is(err, simulation.ErrGeneration) {
				cerr = utils.NewGenerationError(err.Error())
			} else {
				cerr = utils.NewPersistenceError(err.Error())
			}
			logger.Error("Failed to create simulation", map[string]interface{}{
				"error": cerr.Error(),
			})
			return c.JSON(cerr.Code, models.ErrorResponse{Message: cerr.Message})
		}

		logger.Info("Simulation request completed", map[string]interface{}{
			"simulation_id": sim.ID,
			"career_paths":  len(sim.CareerPaths()),
		})

		return c.JSON(http.StatusCreated, sim)
	}
}

// GetSimulationHandler handles GET /api/simulations/:id. A non-integer id is
// treated exactly like a missing record and yields 404.
func GetSimulationHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		notFound := utils.NewNotFoundError("Simulation not found")

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(notFound.Code, models.ErrorResponse{Message: notFound.Message})
		}

		sim, err := st.GetByID(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(notFound.Code, models.ErrorResponse{Message: notFound.Message})
		}
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to load simulation", map[string]interface{}{
				"simulation_id": id,
				"error":         err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Internal server error",
			})
		}

		return c.JSON(http.StatusOK, sim)
	}
}

// ListSimulationsHandler handles GET /api/simulations
func ListSimulationsHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		sims, err := st.ListAll(c.Request().Context())
		if err != nil {
			logging.GetGlobalLogger().Error("Failed to list simulations", map[string]interface{}{
				"error": err.Error(),
			})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Internal server error",
			})
		}

		return c.JSON(http.StatusOK, sims)
	}
}

func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Field()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return details
}
