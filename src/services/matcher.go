package services

import (
	"fmt"
	"math"
	"sort"

	"project/catalog"
	"project/models"
)

// DefaultTieEpsilon is the confidence-point gap under which the top two
// matches are reported as ties ("close matches detected" in the UI).
// Tunable through config; never inline this comparison.
const DefaultTieEpsilon = 2.5

// ArchetypeMatcher classifies a final score vector against the archetype
// catalog. Classify is a pure function of its inputs: calling it repeatedly
// with the same vector yields identical ranked output.
type ArchetypeMatcher interface {
	Classify(finalScore models.ScoreVector) (*models.ClassificationResult, error)
}

type archetypeMatcher struct {
	catalog    catalog.Catalog
	tieEpsilon float64
}

// NewArchetypeMatcher creates a matcher. A non-positive tieEpsilon falls back
// to DefaultTieEpsilon.
func NewArchetypeMatcher(cat catalog.Catalog, tieEpsilon float64) ArchetypeMatcher {
	if tieEpsilon <= 0 {
		tieEpsilon = DefaultTieEpsilon
	}
	return &archetypeMatcher{catalog: cat, tieEpsilon: tieEpsilon}
}

// Classify ranks every archetype by Euclidean distance to the final score.
// A zero final score is valid input: distances from the origin are well
// defined and the full ranked list is still produced.
func (m *archetypeMatcher) Classify(finalScore models.ScoreVector) (*models.ClassificationResult, error) {
	profiles := m.catalog.GetArchetypeProfiles()
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no archetype profiles to classify against", models.ErrEmptyCatalog)
	}

	matches := make([]models.ArchetypeMatch, 0, len(profiles))
	for _, p := range profiles {
		d := finalScore.DistanceTo(p.Ideal)
		matches = append(matches, models.ArchetypeMatch{
			ArchetypeID: p.ID,
			Name:        p.Name,
			Distance:    d,
			Confidence:  confidenceFromDistance(d),
		})
	}

	// Ascending by distance; equal distances keep catalog declaration order
	// as the explicit tie-break rather than leaning on sort stability.
	order := make(map[string]int, len(profiles))
	for i, p := range profiles {
		order[p.ID] = i
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return order[matches[i].ArchetypeID] < order[matches[j].ArchetypeID]
	})
	for i := range matches {
		matches[i].Rank = i + 1
	}

	result := &models.ClassificationResult{Matches: matches}
	if len(matches) >= 2 {
		result.HasTies = math.Abs(matches[0].Confidence-matches[1].Confidence) < m.tieEpsilon
	}
	return result, nil
}

// confidenceFromDistance converts a distance to an independent closeness
// score in (0,100]: 100 at distance zero, monotonically decreasing, never
// negative. Confidences across archetypes are not a probability distribution.
func confidenceFromDistance(distance float64) float64 {
	c := 100 / (1 + distance)
	return math.Round(c*10) / 10
}
