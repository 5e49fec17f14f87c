package models

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSerializeRoundTrip(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	answered := started.Add(2 * time.Minute)
	completed := started.Add(5 * time.Minute)

	original := &AssessmentSession{
		SessionKey:        "7f9f2a1c-0000-4000-8000-000000000001",
		UserID:            "user1",
		Status:            SessionStatusComplete,
		Score:             ScoreVector{Emotional: 4, Logical: 1},
		ProgressHighWater: 100,
		StartTime:         started,
		LastActivityTime:  completed,
		CompletedAt:       &completed,
		Answers: []Answer{
			{ScenarioID: "s1", OptionIDs: []string{"a"}, Delta: ScoreDelta{Emotional: 2}, AnsweredAt: answered},
			{ScenarioID: "s2", OptionIDs: []string{"a", "b"}, Delta: ScoreDelta{Emotional: 1, Logical: 1}, AnsweredAt: completed},
		},
	}

	data, err := original.Serialize()
	require.NoError(t, err)

	restored, err := DeserializeSession(data)
	require.NoError(t, err)

	assert.Equal(t, original.SessionKey, restored.SessionKey)
	assert.Equal(t, original.UserID, restored.UserID)
	assert.Equal(t, original.Status, restored.Status)
	assert.Equal(t, original.Score, restored.Score)
	assert.Equal(t, original.ProgressHighWater, restored.ProgressHighWater)
	assert.True(t, original.StartTime.Equal(restored.StartTime))
	assert.True(t, original.LastActivityTime.Equal(restored.LastActivityTime))
	require.NotNil(t, restored.CompletedAt)
	assert.True(t, completed.Equal(*restored.CompletedAt))
	require.Len(t, restored.Answers, 2)
	assert.Equal(t, original.Answers[0].OptionIDs, restored.Answers[0].OptionIDs)
	assert.True(t, original.Answers[1].AnsweredAt.Equal(restored.Answers[1].AnsweredAt))
}

func TestDeserializeSession(t *testing.T) {
	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := DeserializeSession([]byte(`{"session_key":"k","status":"paused"}`))
		assert.Error(t, err)
	})

	t.Run("missing status defaults to not started", func(t *testing.T) {
		session, err := DeserializeSession([]byte(`{"session_key":"k","user_id":"u"}`))
		require.NoError(t, err)
		assert.Equal(t, SessionStatusNotStarted, session.Status)
	})

	t.Run("malformed payload rejected", func(t *testing.T) {
		_, err := DeserializeSession([]byte(`{"session_key":`))
		assert.Error(t, err)
	})

	t.Run("lost start time repaired from the first answer", func(t *testing.T) {
		answered := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		answers, err := json.Marshal([]Answer{{ScenarioID: "s1", AnsweredAt: answered}})
		require.NoError(t, err)
		payload := fmt.Sprintf(`{"session_key":"k","status":"in_progress","answers":%s}`, answers)

		session, err := DeserializeSession([]byte(payload))
		require.NoError(t, err)
		assert.True(t, answered.Equal(session.StartTime))
		assert.True(t, answered.Equal(session.LastActivityTime))
	})

	t.Run("degraded space-separated timestamp accepted", func(t *testing.T) {
		payload := `{"session_key":"k","status":"in_progress","start_time":"2026-01-02 03:04:05"}`
		session, err := DeserializeSession([]byte(payload))
		require.NoError(t, err)
		assert.Equal(t, 2026, session.StartTime.Year())
		assert.Equal(t, 5, session.StartTime.Second())
	})
}

func TestNormalizeTimestamp(t *testing.T) {
	reference := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2026-01-02T03:04:05Z", reference},
		{"rfc3339 with nanos", "2026-01-02T03:04:05.123456789Z", reference.Add(123456789 * time.Nanosecond)},
		{"space separated", "2026-01-02 03:04:05", reference},
		{"date only", "2026-01-02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"unix seconds", "1767323045", time.Unix(1767323045, 0).UTC()},
		{"unix milliseconds", "1767323045123", time.UnixMilli(1767323045123).UTC()},
		{"empty", "", time.Time{}},
		{"literal null", "null", time.Time{}},
		{"garbage", "not-a-time", time.Time{}},
		{"surrounding whitespace", "  2026-01-02T03:04:05Z  ", reference},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTimestamp(tc.raw)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestAssessmentSessionHelpers(t *testing.T) {
	t.Run("nil session is neither started nor complete", func(t *testing.T) {
		var s *AssessmentSession
		assert.False(t, s.IsStarted())
		assert.False(t, s.IsComplete())
		assert.Nil(t, s.LastAnswer())
	})

	t.Run("last answer points at the newest entry", func(t *testing.T) {
		s := &AssessmentSession{
			Status: SessionStatusInProgress,
			Answers: []Answer{
				{ScenarioID: "s1"},
				{ScenarioID: "s2"},
			},
		}
		require.NotNil(t, s.LastAnswer())
		assert.Equal(t, "s2", s.LastAnswer().ScenarioID)
		assert.True(t, s.IsStarted())
		assert.False(t, s.IsComplete())
	})
}
