package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/catalog"
	"project/models"
)

func TestArchetypeMatcher_Classify(t *testing.T) {
	cat := newTestCatalog(t)
	matcher := NewArchetypeMatcher(cat, 0)

	t.Run("closest ideal ranks first", func(t *testing.T) {
		// Score {2,0,0}: Feeler's ideal {3,0,0} is closer than Thinker's {0,3,0}.
		result, err := matcher.Classify(models.ScoreVector{Emotional: 2})
		require.NoError(t, err)
		require.Len(t, result.Matches, 3)
		assert.Equal(t, "feeler", result.Matches[0].ArchetypeID)
		assert.Equal(t, 1, result.Matches[0].Rank)
		assert.Equal(t, "thinker", result.Matches[1].ArchetypeID) // thinker before rover: catalog order breaks the tie
		assert.Greater(t, result.Matches[0].Confidence, result.Matches[1].Confidence)
	})

	t.Run("pure function: identical inputs give identical output", func(t *testing.T) {
		score := models.ScoreVector{Emotional: 1, Logical: 2, Exploratory: 3}
		first, err := matcher.Classify(score)
		require.NoError(t, err)
		second, err := matcher.Classify(score)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("zero vector still produces a full ranked list", func(t *testing.T) {
		result, err := matcher.Classify(models.ScoreVector{})
		require.NoError(t, err)
		assert.Len(t, result.Matches, 3)
		for i, m := range result.Matches {
			assert.Equal(t, i+1, m.Rank)
			assert.Greater(t, m.Distance, 0.0)
		}
	})

	t.Run("distance ordering is ascending with contiguous ranks", func(t *testing.T) {
		result, err := matcher.Classify(models.ScoreVector{Logical: 5})
		require.NoError(t, err)
		for i := 1; i < len(result.Matches); i++ {
			assert.LessOrEqual(t, result.Matches[i-1].Distance, result.Matches[i].Distance)
			assert.Equal(t, result.Matches[i-1].Rank+1, result.Matches[i].Rank)
		}
	})
}

func TestArchetypeMatcher_TieDetection(t *testing.T) {
	// Two archetypes equidistant from any balanced score.
	archetypes := []models.ArchetypeProfile{
		{ID: "left", Name: "Left", Ideal: models.ScoreVector{Emotional: 4}},
		{ID: "right", Name: "Right", Ideal: models.ScoreVector{Logical: 4}},
		{ID: "far", Name: "Far", Ideal: models.ScoreVector{Exploratory: 20}},
	}
	cat, err := catalog.New(testScenarios(), "s1", archetypes, nil)
	require.NoError(t, err)
	matcher := NewArchetypeMatcher(cat, DefaultTieEpsilon)

	t.Run("equidistant top two flagged as ties", func(t *testing.T) {
		result, err := matcher.Classify(models.ScoreVector{Emotional: 2, Logical: 2})
		require.NoError(t, err)
		assert.True(t, result.HasTies)
		assert.InDelta(t, result.Matches[0].Confidence, result.Matches[1].Confidence, DefaultTieEpsilon)
		// Equal distance: catalog declaration order decides rank.
		assert.Equal(t, "left", result.Matches[0].ArchetypeID)
		assert.Equal(t, "right", result.Matches[1].ArchetypeID)
	})

	t.Run("clear winner is not flagged", func(t *testing.T) {
		result, err := matcher.Classify(models.ScoreVector{Emotional: 4})
		require.NoError(t, err)
		assert.False(t, result.HasTies)
		assert.Equal(t, "left", result.Matches[0].ArchetypeID)
	})
}

func TestConfidenceFromDistance(t *testing.T) {
	assert.Equal(t, 100.0, confidenceFromDistance(0))

	// Monotonically decreasing, never negative.
	prev := confidenceFromDistance(0)
	for _, d := range []float64{0.5, 1, 2, 5, 10, 100} {
		c := confidenceFromDistance(d)
		assert.Less(t, c, prev)
		assert.GreaterOrEqual(t, c, 0.0)
		prev = c
	}
}
