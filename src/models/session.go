package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SessionStatus defines where a session sits in its lifecycle.
type SessionStatus string

const (
	SessionStatusNotStarted SessionStatus = "not_started" // Created but start() not called
	SessionStatusInProgress SessionStatus = "in_progress" // Awaiting selections
	SessionStatusComplete   SessionStatus = "complete"    // Terminal scenario reached
)

// Answer records one answered scenario. Immutable once recorded; the history
// is append-only except for the explicit rewind operation, which pops the
// last entry and reverts exactly its Delta.
type Answer struct {
	ScenarioID string     `json:"scenario_id"`
	OptionIDs  []string   `json:"option_ids"`
	Delta      ScoreDelta `json:"delta"`
	AnsweredAt time.Time  `json:"answered_at"`
}

// UserPath is derived path bookkeeping, always recomputed from the answer
// history and the catalog, never stored authoritatively.
type UserPath struct {
	VisitedScenarios []string `json:"visited_scenarios"`
	BranchingPoints  int      `json:"branching_points"`
	TotalSteps       int      `json:"total_steps"`
}

// AssessmentSession is the root aggregate for one user's walk through the
// questionnaire. Only primitive state is persisted; classification results
// and path analytics are re-derived on read so a reload can never surface a
// stale copy of them.
type AssessmentSession struct {
	ID                uint          `json:"id" gorm:"primaryKey"`
	SessionKey        string        `json:"session_key" gorm:"uniqueIndex;size:36"`
	UserID            string        `json:"user_id" gorm:"index"`
	Status            SessionStatus `json:"status" gorm:"index"`
	CurrentScenarioID string        `json:"current_scenario_id,omitempty"`
	Score             ScoreVector   `json:"score" gorm:"embedded;embeddedPrefix:score_"`
	Answers           []Answer      `json:"answers" gorm:"serializer:json"`
	// ProgressHighWater keeps the progress estimate monotone: rewinding an
	// answer never lowers the percentage already reported to the user.
	ProgressHighWater float64    `json:"progress_high_water"`
	StartTime         time.Time  `json:"start_time"`
	LastActivityTime  time.Time  `json:"last_activity_time"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsStarted reports whether start() has been called and the session survives.
func (s *AssessmentSession) IsStarted() bool {
	return s != nil && s.Status != SessionStatusNotStarted
}

// IsComplete reports whether the terminal scenario has been reached.
func (s *AssessmentSession) IsComplete() bool {
	return s != nil && s.Status == SessionStatusComplete
}

// LastAnswer returns the most recent history entry, or nil.
func (s *AssessmentSession) LastAnswer() *Answer {
	if s == nil || len(s.Answers) == 0 {
		return nil
	}
	return &s.Answers[len(s.Answers)-1]
}

// sessionSnapshot is the transport form of a session's primitive fields.
// Timestamps travel as strings because the transport is known to degrade
// rich temporal types on round-trip; they are repaired on the way back in.
type sessionSnapshot struct {
	SessionKey        string      `json:"session_key"`
	UserID            string      `json:"user_id"`
	Status            string      `json:"status"`
	CurrentScenarioID string      `json:"current_scenario_id,omitempty"`
	Score             ScoreVector `json:"score"`
	Answers           []Answer    `json:"answers"`
	ProgressHighWater float64     `json:"progress_high_water"`
	StartTime         string      `json:"start_time,omitempty"`
	LastActivityTime  string      `json:"last_activity_time,omitempty"`
	CompletedAt       string      `json:"completed_at,omitempty"`
}

// Serialize renders the session's primitive fields for the persistence
// boundary. Derived data (path analytics, classification) is deliberately
// excluded; consumers reconstruct it after DeserializeSession.
func (s *AssessmentSession) Serialize() ([]byte, error) {
	snap := sessionSnapshot{
		SessionKey:        s.SessionKey,
		UserID:            s.UserID,
		Status:            string(s.Status),
		CurrentScenarioID: s.CurrentScenarioID,
		Score:             s.Score,
		Answers:           s.Answers,
		ProgressHighWater: s.ProgressHighWater,
	}
	if !s.StartTime.IsZero() {
		snap.StartTime = s.StartTime.Format(time.RFC3339Nano)
	}
	if !s.LastActivityTime.IsZero() {
		snap.LastActivityTime = s.LastActivityTime.Format(time.RFC3339Nano)
	}
	if s.CompletedAt != nil {
		snap.CompletedAt = s.CompletedAt.Format(time.RFC3339Nano)
	}
	return json.Marshal(snap)
}

// DeserializeSession rebuilds a session from its serialized form. All
// temporal fields pass through NormalizeTimestamp, the single repair point
// for storage layers that weaken time values to plain strings.
func DeserializeSession(data []byte) (*AssessmentSession, error) {
	var snap sessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	status := SessionStatus(snap.Status)
	switch status {
	case SessionStatusNotStarted, SessionStatusInProgress, SessionStatusComplete:
	case "":
		status = SessionStatusNotStarted
	default:
		return nil, fmt.Errorf("session snapshot carries unknown status %q", snap.Status)
	}

	session := &AssessmentSession{
		SessionKey:        snap.SessionKey,
		UserID:            snap.UserID,
		Status:            status,
		CurrentScenarioID: snap.CurrentScenarioID,
		Score:             snap.Score,
		Answers:           snap.Answers,
		ProgressHighWater: snap.ProgressHighWater,
		StartTime:         NormalizeTimestamp(snap.StartTime),
		LastActivityTime:  NormalizeTimestamp(snap.LastActivityTime),
	}
	if snap.CompletedAt != "" {
		if t := NormalizeTimestamp(snap.CompletedAt); !t.IsZero() {
			session.CompletedAt = &t
		}
	}

	// Repair rather than reject degraded timestamps: a lost start time falls
	// back to the earliest answer, a lost activity time to the start time.
	if session.StartTime.IsZero() && len(session.Answers) > 0 {
		session.StartTime = session.Answers[0].AnsweredAt
	}
	if session.LastActivityTime.IsZero() {
		if last := session.LastAnswer(); last != nil {
			session.LastActivityTime = last.AnsweredAt
		} else {
			session.LastActivityTime = session.StartTime
		}
	}
	return session, nil
}

// NormalizeTimestamp parses a timestamp that may have been weakened by the
// persistence transport. It accepts RFC3339 (with or without sub-second
// precision), the "2006-01-02 15:04:05" form some stores emit, and unix
// seconds or milliseconds rendered as a number. Anything unrecognizable
// repairs to the zero time instead of failing the whole deserialization.
func NormalizeTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		// Millisecond epochs are 13 digits wide through at least 2286.
		if n > 1e12 {
			return time.UnixMilli(n).UTC()
		}
		return time.Unix(n, 0).UTC()
	}
	return time.Time{}
}
