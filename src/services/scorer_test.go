package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/models"
)

func TestScoreAccumulator_ApplyAnswer(t *testing.T) {
	cat := newTestCatalog(t)
	scorer := NewScoreAccumulator()
	now := time.Now()

	s1, _ := cat.GetScenario("s1")
	s2, _ := cat.GetScenario("s2")

	t.Run("single-select adds the chosen option's delta", func(t *testing.T) {
		score, answer, err := scorer.ApplyAnswer(models.ScoreVector{}, s1, []string{"a"}, now)
		require.NoError(t, err)
		assert.Equal(t, models.ScoreVector{Emotional: 2}, score)
		assert.Equal(t, "s1", answer.ScenarioID)
		assert.Equal(t, []string{"a"}, answer.OptionIDs)
		assert.Equal(t, now, answer.AnsweredAt)
	})

	t.Run("multi-select sums every selected option's delta", func(t *testing.T) {
		score, answer, err := scorer.ApplyAnswer(models.ScoreVector{Logical: 1}, s2, []string{"a", "b", "c"}, now)
		require.NoError(t, err)
		assert.Equal(t, models.ScoreVector{Emotional: 1, Logical: 2, Exploratory: 1}, score)
		assert.Equal(t, models.ScoreDelta{Emotional: 1, Logical: 1, Exploratory: 1}, answer.Delta)
	})

	t.Run("unknown option leaves the score untouched", func(t *testing.T) {
		start := models.ScoreVector{Emotional: 4}
		score, _, err := scorer.ApplyAnswer(start, s1, []string{"nope"}, now)
		assert.ErrorIs(t, err, models.ErrUnknownOption)
		assert.Equal(t, start, score)
	})
}

func TestScoreAccumulator_RevertAnswer(t *testing.T) {
	cat := newTestCatalog(t)
	scorer := NewScoreAccumulator()
	s2, _ := cat.GetScenario("s2")

	before := models.ScoreVector{Emotional: 3, Logical: 1}
	after, answer, err := scorer.ApplyAnswer(before, s2, []string{"a", "c"}, time.Now())
	require.NoError(t, err)

	// Reverting must restore the exact pre-answer vector.
	assert.Equal(t, before, scorer.RevertAnswer(after, answer))
}

func TestScoreAccumulator_Replay(t *testing.T) {
	scorer := NewScoreAccumulator()

	history := []models.Answer{
		{ScenarioID: "s1", Delta: models.ScoreDelta{Emotional: 2}},
		{ScenarioID: "s2", Delta: models.ScoreDelta{Emotional: 1, Logical: 1}},
		{ScenarioID: "s4", Delta: models.ScoreDelta{Logical: 1}},
	}

	t.Run("replay is deterministic across runs", func(t *testing.T) {
		first := scorer.Replay(history)
		second := scorer.Replay(history)
		assert.Equal(t, first, second)
		assert.Equal(t, models.ScoreVector{Emotional: 3, Logical: 2}, first)
	})

	t.Run("empty history replays to the zero vector", func(t *testing.T) {
		assert.True(t, scorer.Replay(nil).IsZero())
	})
}
