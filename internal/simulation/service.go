package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/llm"
	"github.com/rishav-del/ai-career-path-simulator/internal/logging"
	"github.com/rishav-del/ai-career-path-simulator/internal/store"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// ErrGeneration signals that the completion provider produced no usable
// result. Nothing has been persisted when this is returned.
var ErrGeneration = errors.New("failed to generate career paths")

// DefaultGoals is substituted when a profile omits the goals field.
const DefaultGoals = "Not specified"

// Service runs the submission pipeline: prompt the provider, validate the
// returned document, persist profile and result as one row.
type Service struct {
	config   *config.Config
	store    store.Store
	provider llm.Provider
	logger   logging.Logger
}

// NewService creates a new generation service
func NewService(cfg *config.Config, st store.Store, provider llm.Provider) *Service {
	return &Service{
		config:   cfg,
		store:    st,
		provider: provider,
		logger:   logging.GetGlobalLogger(),
	}
}

// Generate produces career paths for a validated profile and persists the
// result. Any provider failure aborts the whole operation with the store
// untouched; the returned simulation carries the provider document verbatim.
func (s *Service) Generate(ctx context.Context, profile models.Profile) (*models.Simulation, error) {
	if profile.Goals == "" {
		profile.Goals = DefaultGoals
	}

	result, err := s.callProvider(ctx, profile)
	if err != nil {
		s.logger.Error("Career path generation failed", map[string]interface{}{
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	sim, err := s.store.Create(ctx, profile, datatypes.JSON(result))
	if err != nil {
		s.logger.Error("Failed to persist simulation", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Simulation created", map[string]interface{}{
		"simulation_id": sim.ID,
		"provider":      s.provider.Name(),
	})

	return sim, nil
}

// callProvider runs the provider call under the configured deadline with at
// most one retry. Retries only ever happen before anything is persisted, so
// a retried call can never duplicate a row.
func (s *Service) callProvider(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	attempts := 1 + s.config.LLM.MaxRetries
	if attempts > 2 {
		attempts = 2
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := s.callOnce(ctx, profile)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < attempts {
			s.logger.Warn("Provider call failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"error":   err.Error(),
			})
		}
	}

	return nil, lastErr
}

func (s *Service) callOnce(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	if s.config.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.LLM.Timeout)
		defer cancel()
	}

	return s.provider.GenerateCareerPaths(ctx, profile)
}
