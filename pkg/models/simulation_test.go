package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCareerPathsDecodesResultDocument(t *testing.T) {
	sim := Simulation{Result: datatypes.JSON(`{"careerPaths":[
		{"title":"Data Analyst","matchScore":88,"timeline":"6 months","difficulty":"Easy",
		 "description":"Work with data","requiredSkills":["SQL"],"missingSkills":["Tableau"],
		 "actionPlan":["Take a course"]}]}`)}

	paths := sim.CareerPaths()
	require.Len(t, paths, 1)
	require.Equal(t, "Data Analyst", paths[0].Title)
	require.Equal(t, 88.0, paths[0].MatchScore)
	require.Equal(t, "Easy", paths[0].Difficulty)
	require.Equal(t, []string{"SQL"}, paths[0].RequiredSkills)
}

func TestCareerPathsToleratesShapeDrift(t *testing.T) {
	// Stored documents are never validated on write, so reads must degrade
	// to an empty list instead of failing
	for name, doc := range map[string]string{
		"wrong type":   `{"careerPaths":"oops"}`,
		"invalid json": `{"careerPaths":`,
		"missing key":  `{"paths":[]}`,
		"empty":        ``,
	} {
		sim := Simulation{Result: datatypes.JSON(doc)}
		require.Empty(t, sim.CareerPaths(), name)
	}
}
