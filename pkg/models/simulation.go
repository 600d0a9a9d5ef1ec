package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile is the user-submitted input for a simulation. Goals is the only
// optional field and defaults to "Not specified" when absent.
type Profile struct {
	Skills       string `json:"skills" validate:"required"`
	Interests    string `json:"interests" validate:"required"`
	Availability string `json:"availability" validate:"required"`
	Background   string `json:"background" validate:"required"`
	Goals        string `json:"goals"`
}

// Simulation pairs a submitted profile with the generated career paths.
// Result holds the provider's JSON document verbatim; once written it is
// never mutated.
type Simulation struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Skills       string         `gorm:"not null" json:"skills"`
	Interests    string         `gorm:"not null" json:"interests"`
	Availability string         `gorm:"not null" json:"availability"`
	Background   string         `gorm:"not null" json:"background"`
	Goals        string         `gorm:"default:'Not specified'" json:"goals"`
	Result       datatypes.JSON `json:"result"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CareerPath is one recommendation entry inside a simulation result. The
// provider is asked for exactly three of these, but the stored document is
// never validated against this shape.
type CareerPath struct {
	Title          string   `json:"title"`
	MatchScore     float64  `json:"matchScore"`
	Timeline       string   `json:"timeline"`
	Difficulty     string   `json:"difficulty"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	MissingSkills  []string `json:"missingSkills"`
	ActionPlan     []string `json:"actionPlan"`
}

// CareerPaths decodes the result document into typed entries for read-side
// consumers. Shape drift in the stored document yields an empty slice rather
// than an error.
func (s *Simulation) CareerPaths() []CareerPath {
	if len(s.Result) == 0 {
		return nil
	}

	var doc struct {
		CareerPaths []CareerPath `json:"careerPaths"`
	}
	if err := json.Unmarshal(s.Result, &doc); err != nil {
		return nil
	}
	return doc.CareerPaths
}
