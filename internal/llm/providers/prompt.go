package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// SystemInstruction is sent alongside every generation request.
const SystemInstruction = "You are a helpful career counselor AI. Output valid JSON only."

// BuildCareerPathPrompt creates the generation prompt for a profile. The
// prompt is deterministic: the same profile always produces the same text,
// with the five fields embedded verbatim.
func BuildCareerPathPrompt(profile models.Profile) string {
	return fmt.Sprintf(`Act as a career counselor. Based on the following profile, generate 3 distinct career paths.

Profile:
- Skills: %s
- Interests: %s
- Availability: %s
- Background: %s
- Goals: %s

Return a JSON object with a key "careerPaths" which is an array of 3 objects.
Each object must have exactly these fields:
- title: string
- matchScore: number (0-100)
- timeline: string (e.g., "6 months")
- difficulty: "Easy" | "Medium" | "Hard"
- description: string (brief overview)
- requiredSkills: array of strings
- missingSkills: array of strings
- actionPlan: array of strings (30-day plan, simplified to key steps)

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. The "careerPaths" array must contain exactly 3 entries
3. difficulty must be one of "Easy", "Medium" or "Hard"`,
		profile.Skills,
		profile.Interests,
		profile.Availability,
		profile.Background,
		profile.Goals,
	)
}

// extractJSON cleans a provider response and validates it as JSON. Markdown
// code fences are stripped if present; the document's field-level shape is
// deliberately not checked.
func extractJSON(responseText string) (json.RawMessage, error) {
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	if responseText == "" {
		return nil, fmt.Errorf("empty response from provider")
	}

	if !json.Valid([]byte(responseText)) {
		return nil, fmt.Errorf("provider response is not valid JSON")
	}

	return json.RawMessage(responseText), nil
}
