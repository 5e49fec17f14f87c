package models

// CatalogSummary describes the loaded catalog for the bootstrap response so
// the UI can render intro copy before a session exists.
type CatalogSummary struct {
	ScenarioCount   int    `json:"scenario_count"`
	ArchetypeCount  int    `json:"archetype_count"`
	PersonaCount    int    `json:"persona_count"`
	StartScenarioID string `json:"start_scenario_id"`
}

// InitResponse is the payload of GET /api/init: catalog shape plus the
// caller's current session state, if any.
type InitResponse struct {
	UserID   string             `json:"user_id"`
	Catalog  CatalogSummary     `json:"catalog"`
	Session  *AssessmentSession `json:"session,omitempty"`
	Progress float64            `json:"progress"`
}

// SessionResult is the post-completion view: the ranked archetype matches,
// the derived vulnerability assessment, and the path analytics, all
// recomputed from the persisted primitive state on every read.
type SessionResult struct {
	Session        *AssessmentSession       `json:"session"`
	Classification *ClassificationResult    `json:"classification"`
	Vulnerability  *VulnerabilityAssessment `json:"vulnerability"`
	Path           *UserPath                `json:"path"`
}
