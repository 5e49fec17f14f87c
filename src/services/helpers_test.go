package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"project/catalog"
	"project/models"
)

// testScenarios is a small branching graph used across the service tests:
//
//	s1 (single, branching) --a/c--> s2 (multi, min 2) --> s4 or s5
//	                        --b--->  s3 (single)       --> s4
//	s4, s5: terminal options only.
func testScenarios() []models.Scenario {
	return []models.Scenario{
		{
			ID:            "s1",
			Prompt:        "first",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "feel", Delta: models.ScoreDelta{Emotional: 2}, Next: "s2"},
				{ID: "b", Text: "think", Delta: models.ScoreDelta{Logical: 2}, Next: "s3"},
				{ID: "c", Text: "roam", Delta: models.ScoreDelta{Exploratory: 1}, Next: "s2"},
			},
		},
		{
			ID:            "s2",
			Prompt:        "pick two",
			SelectionMode: models.SelectionMulti,
			MinSelections: 2,
			Options: []models.AnswerOption{
				{ID: "a", Text: "warmth", Delta: models.ScoreDelta{Emotional: 1}, Next: "s4"},
				{ID: "b", Text: "order", Delta: models.ScoreDelta{Logical: 1}, Next: "s4"},
				{ID: "c", Text: "novelty", Delta: models.ScoreDelta{Exploratory: 1}, Next: "s5"},
			},
		},
		{
			ID:            "s3",
			Prompt:        "detour",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "onward", Delta: models.ScoreDelta{Logical: 1}, Next: "s4"},
			},
		},
		{
			ID:            "s4",
			Prompt:        "last",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "commit", Delta: models.ScoreDelta{Emotional: 1}, Next: models.TerminalNext},
				{ID: "b", Text: "plan", Delta: models.ScoreDelta{Logical: 1}, Next: models.TerminalNext},
			},
		},
		{
			ID:            "s5",
			Prompt:        "other last",
			SelectionMode: models.SelectionSingle,
			Options: []models.AnswerOption{
				{ID: "a", Text: "drift", Delta: models.ScoreDelta{Exploratory: 2}, Next: models.TerminalNext},
			},
		},
	}
}

func testArchetypes() []models.ArchetypeProfile {
	return []models.ArchetypeProfile{
		{ID: "feeler", Name: "Feeler", Ideal: models.ScoreVector{Emotional: 3}},
		{ID: "thinker", Name: "Thinker", Ideal: models.ScoreVector{Logical: 3}},
		{ID: "rover", Name: "Rover", Ideal: models.ScoreVector{Exploratory: 3}},
	}
}

func testPersonas() []models.PersonaProfile {
	return []models.PersonaProfile{
		{ID: "p_rush", Name: "Rushed Commitment", Severity: models.RiskLevelHigh, ArchetypeIDs: []string{"feeler"}},
		{ID: "p_list", Name: "Checklist Tunnel", Severity: models.RiskLevelLow, ArchetypeIDs: []string{"thinker"}},
		{ID: "p_both", Name: "Either Way", Severity: models.RiskLevelMedium, ArchetypeIDs: []string{"feeler", "thinker"}},
	}
}

func newTestCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(testScenarios(), "s1", testArchetypes(), testPersonas())
	require.NoError(t, err)
	return cat
}
