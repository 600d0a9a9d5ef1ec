package llm

import (
	"fmt"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/llm/providers"
)

// Factory creates completion provider instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new provider factory instance
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{config: cfg}
}

// CreateProvider creates a completion provider based on the configuration
func (f *Factory) CreateProvider() (Provider, error) {
	switch f.config.LLM.Provider {
	case "claude":
		return providers.NewClaudeProvider(f.config), nil
	case "gemini":
		return providers.NewGeminiProvider(f.config)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.config.LLM.Provider)
	}
}

// SupportedProviders returns the list of supported completion providers
func (f *Factory) SupportedProviders() []string {
	return []string{"claude", "gemini"}
}
