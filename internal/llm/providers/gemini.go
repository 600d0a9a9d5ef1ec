package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/logging"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
	"github.com/rishav-del/ai-career-path-simulator/pkg/utils"
)

// GeminiProvider implements the completion provider interface using
// Google's Gemini
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// GenerateCareerPaths asks Gemini for career path recommendations and
// returns the raw JSON document from the response
func (gp *GeminiProvider) GenerateCareerPaths(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	startTime := time.Now()

	gp.logger.Info("Starting career path generation with Gemini", map[string]interface{}{
		"provider": "gemini",
		"model":    gp.model(),
	})

	prompt := BuildCareerPathPrompt(profile)

	response, err := gp.client.Models.GenerateContent(ctx, gp.model(), genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr(gp.config.LLM.Temperature),
		MaxOutputTokens:   int32(gp.config.LLM.MaxTokens),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}

	result, err := extractJSON(response.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	gp.logger.Info("Career path generation completed successfully", map[string]interface{}{
		"provider":        "gemini",
		"processing_time": utils.FormatDuration(time.Since(startTime)),
	})

	return result, nil
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := gp.client.Models.GenerateContent(ctx, gp.model(), genai.Text("Hello"), &genai.GenerateContentConfig{
		MaxOutputTokens: 16,
	})

	if err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}

	return nil
}

// Name returns the name of the provider
func (gp *GeminiProvider) Name() string {
	return "gemini"
}

func (gp *GeminiProvider) model() string {
	return utils.GetStringOrDefault(gp.config.LLM.Model, "gemini-2.5-pro")
}
