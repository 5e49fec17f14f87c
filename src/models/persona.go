package models

// RiskLevel classifies how exposed a user is to a vulnerability pattern.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
	// RiskLevelNotAssessed is the neutral overall level reported when no
	// persona is associated with the matched archetypes. It is a valid,
	// displayable state, not an error.
	RiskLevelNotAssessed RiskLevel = "not_assessed"
)

// Escalated returns the next tier up, saturating at high.
func (l RiskLevel) Escalated() RiskLevel {
	switch l {
	case RiskLevelLow:
		return RiskLevelMedium
	case RiskLevelMedium:
		return RiskLevelHigh
	default:
		return l
	}
}

// Weight returns the numeric weight used for the aggregate risk score.
func (l RiskLevel) Weight() int {
	switch l {
	case RiskLevelHigh:
		return 3
	case RiskLevelMedium:
		return 2
	case RiskLevelLow:
		return 1
	default:
		return 0
	}
}

// PersonaProfile is a catalog entry describing a vulnerability/manipulation
// pattern. ArchetypeIDs is the association rule: the persona applies to users
// whose primary or secondary archetype appears in the list. Severity is the
// persona's intrinsic base risk tier before match strength is considered.
type PersonaProfile struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Guidance     string    `json:"guidance,omitempty" yaml:"guidance,omitempty"`
	Severity     RiskLevel `json:"severity" yaml:"severity"`
	ArchetypeIDs []string  `json:"archetype_ids" yaml:"archetype_ids"`
	// MinScores optionally narrows the rule further: the persona only applies
	// when every dimension of the final score meets its threshold. Absent
	// means no score condition.
	MinScores *ScoreVector `json:"min_scores,omitempty" yaml:"min_scores,omitempty"`
}

// MeetsThresholds reports whether the final score satisfies the persona's
// optional score-dimension thresholds.
func (p *PersonaProfile) MeetsThresholds(score ScoreVector) bool {
	if p.MinScores == nil {
		return true
	}
	return score.Emotional >= p.MinScores.Emotional &&
		score.Logical >= p.MinScores.Logical &&
		score.Exploratory >= p.MinScores.Exploratory
}

// AssociatedWith reports whether the persona's association rule names the
// given archetype.
func (p *PersonaProfile) AssociatedWith(archetypeID string) bool {
	for _, id := range p.ArchetypeIDs {
		if id == archetypeID {
			return true
		}
	}
	return false
}

// PersonaFinding is one selected persona annotated with the risk tier
// assigned for this particular user.
type PersonaFinding struct {
	PersonaID   string    `json:"persona_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Guidance    string    `json:"guidance,omitempty"`
	RiskLevel   RiskLevel `json:"risk_level"`
	// ArchetypeID is the matched archetype that pulled this persona in.
	ArchetypeID string `json:"archetype_id"`
}

// VulnerabilityAssessment is the secondary classification derived from the
// archetype result. The zero persona set is explicit: Findings empty,
// OverallRisk not_assessed, RiskScore zero.
type VulnerabilityAssessment struct {
	Findings         []PersonaFinding  `json:"findings"`
	RiskDistribution map[RiskLevel]int `json:"risk_distribution"`
	RiskScore        float64           `json:"risk_score"`
	OverallRisk      RiskLevel         `json:"overall_risk"`
}

// Assessed reports whether any persona was selected.
func (a *VulnerabilityAssessment) Assessed() bool {
	return a != nil && len(a.Findings) > 0
}
