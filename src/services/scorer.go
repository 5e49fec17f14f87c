package services

import (
	"fmt"
	"time"

	"project/models"
)

// ScoreAccumulator applies answers to the running score vector and maintains
// the append-only answer history. Replaying the same ordered history from a
// fresh vector always reproduces the same result.
type ScoreAccumulator interface {
	// ApplyAnswer combines the selected options' deltas (multi-select sums
	// every selected option's delta) and returns the new vector plus the
	// immutable Answer record to append.
	ApplyAnswer(score models.ScoreVector, scenario *models.Scenario, optionIDs []string, at time.Time) (models.ScoreVector, models.Answer, error)
	// RevertAnswer removes exactly the delta a previous answer added.
	RevertAnswer(score models.ScoreVector, answer models.Answer) models.ScoreVector
	// Replay folds an ordered history over the zero vector.
	Replay(answers []models.Answer) models.ScoreVector
}

type scoreAccumulator struct{}

// NewScoreAccumulator creates the accumulator. It is stateless; all state
// lives on the session.
func NewScoreAccumulator() ScoreAccumulator {
	return scoreAccumulator{}
}

func (scoreAccumulator) ApplyAnswer(score models.ScoreVector, scenario *models.Scenario, optionIDs []string, at time.Time) (models.ScoreVector, models.Answer, error) {
	deltas := make([]models.ScoreDelta, 0, len(optionIDs))
	for _, id := range optionIDs {
		opt := scenario.OptionByID(id)
		if opt == nil {
			return score, models.Answer{}, fmt.Errorf("%w: %q on scenario %q", models.ErrUnknownOption, id, scenario.ID)
		}
		deltas = append(deltas, opt.Delta)
	}

	combined := models.Combine(deltas...)
	answer := models.Answer{
		ScenarioID: scenario.ID,
		OptionIDs:  append([]string(nil), optionIDs...),
		Delta:      combined,
		AnsweredAt: at,
	}
	return score.Add(combined), answer, nil
}

func (scoreAccumulator) RevertAnswer(score models.ScoreVector, answer models.Answer) models.ScoreVector {
	return score.Subtract(answer.Delta)
}

func (scoreAccumulator) Replay(answers []models.Answer) models.ScoreVector {
	var score models.ScoreVector
	for _, ans := range answers {
		score = score.Add(ans.Delta)
	}
	return score
}
