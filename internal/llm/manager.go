package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/logging"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// Manager manages the completion provider and its lifecycle
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new provider manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the manager and creates the configured provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		// Allow the server to start; generation requests will fail until
		// the provider becomes reachable.
		m.logger.Warn("LLM provider health check failed - generation will be unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": m.provider.Name(),
		})
	}

	return nil
}

// Stop shuts down the manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateCareerPaths delegates to the configured provider
func (m *Manager) GenerateCareerPaths(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("LLM manager not started or provider not available")
	}

	return provider.GenerateCareerPaths(ctx, profile)
}

// IsHealthy reports whether the provider passed its last health check
func (m *Manager) IsHealthy(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider == nil {
		return fmt.Errorf("LLM provider not available")
	}
	if !m.healthy {
		return fmt.Errorf("LLM provider is not available - check API key configuration (set LLM_API_KEY environment variable)")
	}
	return nil
}

// Name returns the name of the current provider
func (m *Manager) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.Name()
	}
	return "none"
}

// CheckHealth performs a live health check on the provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
