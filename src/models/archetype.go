package models

// ArchetypeProfile is a catalog entry describing one reference personality
// profile. Ideal is the classification target the user's final score vector
// is measured against.
type ArchetypeProfile struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Ideal       ScoreVector `json:"ideal" yaml:"ideal"`
}

// ArchetypeMatch is one ranked classification result. Confidence is an
// independent closeness score in [0,100], not a probability; confidences
// across matches do not sum to 100.
type ArchetypeMatch struct {
	ArchetypeID string  `json:"archetype_id"`
	Name        string  `json:"name"`
	Distance    float64 `json:"distance"`
	Confidence  float64 `json:"confidence"`
	Rank        int     `json:"rank"`
}

// ClassificationResult is the full ranked output of the archetype matcher.
// HasTies is set when the top two confidences sit within the tie epsilon,
// which the UI surfaces as "close matches detected".
type ClassificationResult struct {
	Matches []ArchetypeMatch `json:"matches"`
	HasTies bool             `json:"has_ties"`
}

// Primary returns the top-ranked match, or nil for an empty result.
func (r *ClassificationResult) Primary() *ArchetypeMatch {
	if r == nil || len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// Secondary returns the second-ranked match, or nil.
func (r *ClassificationResult) Secondary() *ArchetypeMatch {
	if r == nil || len(r.Matches) < 2 {
		return nil
	}
	return &r.Matches[1]
}
