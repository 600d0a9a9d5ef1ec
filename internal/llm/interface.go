package llm

import (
	"context"
	"encoding/json"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// Provider defines the interface for completion providers
type Provider interface {
	// GenerateCareerPaths asks the provider for career path recommendations
	// matching the given profile and returns the raw JSON document
	GenerateCareerPaths(ctx context.Context, profile models.Profile) (json.RawMessage, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// Name returns the name of the provider
	Name() string
}
