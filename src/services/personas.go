package services

import (
	"math"

	"project/catalog"
	"project/models"
)

// DefaultEscalationConfidence is the match confidence at or above which a
// persona's base severity escalates one tier: a strong pull toward an
// archetype means its manipulation patterns bite harder.
const DefaultEscalationConfidence = 75.0

// PersonaSelector derives the secondary classification from the matcher's
// output: which vulnerability personas apply and how hard each one bites.
type PersonaSelector interface {
	SelectPersonas(result *models.ClassificationResult, finalScore models.ScoreVector) *models.VulnerabilityAssessment
}

type personaSelector struct {
	catalog              catalog.Catalog
	escalationConfidence float64
}

// NewPersonaSelector creates a selector. A non-positive threshold falls back
// to DefaultEscalationConfidence.
func NewPersonaSelector(cat catalog.Catalog, escalationConfidence float64) PersonaSelector {
	if escalationConfidence <= 0 {
		escalationConfidence = DefaultEscalationConfidence
	}
	return &personaSelector{catalog: cat, escalationConfidence: escalationConfidence}
}

// SelectPersonas filters the persona catalog to those associated with the
// primary or secondary archetype and assigns each a risk tier from the
// persona's intrinsic severity and the strength of the user's match. No
// associated personas is a valid outcome: the assessment comes back with an
// empty finding list and an explicit not-assessed overall level.
func (s *personaSelector) SelectPersonas(result *models.ClassificationResult, finalScore models.ScoreVector) *models.VulnerabilityAssessment {
	assessment := &models.VulnerabilityAssessment{
		Findings:         []models.PersonaFinding{},
		RiskDistribution: map[models.RiskLevel]int{},
		OverallRisk:      models.RiskLevelNotAssessed,
	}

	primary := result.Primary()
	if primary == nil {
		return assessment
	}
	secondary := result.Secondary()

	for _, p := range s.catalog.GetPersonaProfiles() {
		match := s.strongestAssociation(&p, primary, secondary)
		if match == nil || !p.MeetsThresholds(finalScore) {
			continue
		}
		level := p.Severity
		if match.Confidence >= s.escalationConfidence {
			level = level.Escalated()
		}
		assessment.Findings = append(assessment.Findings, models.PersonaFinding{
			PersonaID:   p.ID,
			Name:        p.Name,
			Description: p.Description,
			Guidance:    p.Guidance,
			RiskLevel:   level,
			ArchetypeID: match.ArchetypeID,
		})
		assessment.RiskDistribution[level]++
	}

	if len(assessment.Findings) == 0 {
		return assessment
	}

	// Aggregate: weighted mean of tier weights, mapped back to a level.
	total := 0
	for _, f := range assessment.Findings {
		total += f.RiskLevel.Weight()
	}
	assessment.RiskScore = math.Round(float64(total)/float64(len(assessment.Findings))*100) / 100
	assessment.OverallRisk = overallLevel(assessment.RiskScore)
	return assessment
}

// strongestAssociation returns the higher-confidence of the primary or
// secondary match that the persona's rule names, or nil.
func (s *personaSelector) strongestAssociation(p *models.PersonaProfile, primary, secondary *models.ArchetypeMatch) *models.ArchetypeMatch {
	if primary != nil && p.AssociatedWith(primary.ArchetypeID) {
		return primary
	}
	if secondary != nil && p.AssociatedWith(secondary.ArchetypeID) {
		return secondary
	}
	return nil
}

// overallLevel maps the aggregate score (1..3 scale) onto a level.
func overallLevel(score float64) models.RiskLevel {
	switch {
	case score >= 2.5:
		return models.RiskLevelHigh
	case score >= 1.5:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
