package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/catalog"
	"project/models"
)

func classification(matches ...models.ArchetypeMatch) *models.ClassificationResult {
	for i := range matches {
		matches[i].Rank = i + 1
	}
	return &models.ClassificationResult{Matches: matches}
}

func TestPersonaSelector_SelectPersonas(t *testing.T) {
	cat := newTestCatalog(t)
	selector := NewPersonaSelector(cat, 0)

	t.Run("personas of the primary archetype are selected", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "feeler", Confidence: 60},
			models.ArchetypeMatch{ArchetypeID: "rover", Confidence: 30},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Emotional: 5})

		require.True(t, assessment.Assessed())
		ids := make([]string, 0, len(assessment.Findings))
		for _, f := range assessment.Findings {
			ids = append(ids, f.PersonaID)
		}
		// p_rush and p_both name "feeler"; p_list only names "thinker".
		assert.ElementsMatch(t, []string{"p_rush", "p_both"}, ids)
	})

	t.Run("secondary archetype pulls in its personas too", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "rover", Confidence: 55},
			models.ArchetypeMatch{ArchetypeID: "thinker", Confidence: 50},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Exploratory: 5})

		require.Len(t, assessment.Findings, 2)
		for _, f := range assessment.Findings {
			assert.Equal(t, "thinker", f.ArchetypeID)
		}
	})

	t.Run("strong match escalates base severity one tier", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "thinker", Confidence: 90},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Logical: 6})

		require.Len(t, assessment.Findings, 2)
		byID := map[string]models.RiskLevel{}
		for _, f := range assessment.Findings {
			byID[f.PersonaID] = f.RiskLevel
		}
		assert.Equal(t, models.RiskLevelMedium, byID["p_list"]) // low, escalated
		assert.Equal(t, models.RiskLevelHigh, byID["p_both"])   // medium, escalated
	})

	t.Run("weak match keeps base severity", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "thinker", Confidence: 40},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Logical: 2})

		byID := map[string]models.RiskLevel{}
		for _, f := range assessment.Findings {
			byID[f.PersonaID] = f.RiskLevel
		}
		assert.Equal(t, models.RiskLevelLow, byID["p_list"])
		assert.Equal(t, models.RiskLevelMedium, byID["p_both"])
	})

	t.Run("distribution counts sum to the number of findings", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "feeler", Confidence: 80},
			models.ArchetypeMatch{ArchetypeID: "thinker", Confidence: 70},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Emotional: 4, Logical: 4})

		total := 0
		for _, n := range assessment.RiskDistribution {
			total += n
		}
		assert.Equal(t, len(assessment.Findings), total)
		assert.NotEqual(t, models.RiskLevelNotAssessed, assessment.OverallRisk)
		assert.Greater(t, assessment.RiskScore, 0.0)
	})

	t.Run("no associated personas yields neutral assessment, not an error", func(t *testing.T) {
		result := classification(
			models.ArchetypeMatch{ArchetypeID: "rover", Confidence: 95},
		)
		assessment := selector.SelectPersonas(result, models.ScoreVector{Exploratory: 9})

		assert.False(t, assessment.Assessed())
		assert.Empty(t, assessment.Findings)
		assert.Equal(t, models.RiskLevelNotAssessed, assessment.OverallRisk)
		assert.Zero(t, assessment.RiskScore)
	})

	t.Run("empty classification yields neutral assessment", func(t *testing.T) {
		assessment := selector.SelectPersonas(&models.ClassificationResult{}, models.ScoreVector{})
		assert.False(t, assessment.Assessed())
		assert.Equal(t, models.RiskLevelNotAssessed, assessment.OverallRisk)
	})
}

func TestPersonaSelector_ScoreThresholds(t *testing.T) {
	personas := []models.PersonaProfile{
		{
			ID: "p_gated", Name: "Gated", Severity: models.RiskLevelHigh,
			ArchetypeIDs: []string{"feeler"},
			MinScores:    &models.ScoreVector{Emotional: 10},
		},
	}
	cat, err := catalog.New(testScenarios(), "s1", testArchetypes(), personas)
	require.NoError(t, err)
	selector := NewPersonaSelector(cat, 0)

	result := classification(models.ArchetypeMatch{ArchetypeID: "feeler", Confidence: 50})

	t.Run("threshold not met filters the persona out", func(t *testing.T) {
		assessment := selector.SelectPersonas(result, models.ScoreVector{Emotional: 5})
		assert.False(t, assessment.Assessed())
	})

	t.Run("threshold met keeps the persona", func(t *testing.T) {
		assessment := selector.SelectPersonas(result, models.ScoreVector{Emotional: 11})
		require.Len(t, assessment.Findings, 1)
		assert.Equal(t, "p_gated", assessment.Findings[0].PersonaID)
	})
}
