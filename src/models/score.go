package models

import "math"

// ScoreVector is the running three-dimensional accumulator of user choices.
// Components only grow while a session is in progress; the only operations
// that lower them are an exact revert of a previously applied delta and a
// full session reset.
type ScoreVector struct {
	Emotional   int `json:"emotional" yaml:"emotional"`
	Logical     int `json:"logical" yaml:"logical"`
	Exploratory int `json:"exploratory" yaml:"exploratory"`
}

// ScoreDelta is the signed contribution a single answer option makes to the
// score vector.
type ScoreDelta struct {
	Emotional   int `json:"emotional" yaml:"emotional"`
	Logical     int `json:"logical" yaml:"logical"`
	Exploratory int `json:"exploratory" yaml:"exploratory"`
}

// Add returns the vector with the delta applied.
func (v ScoreVector) Add(d ScoreDelta) ScoreVector {
	return ScoreVector{
		Emotional:   v.Emotional + d.Emotional,
		Logical:     v.Logical + d.Logical,
		Exploratory: v.Exploratory + d.Exploratory,
	}
}

// Subtract returns the vector with the delta removed. Used by the rewind
// operation, which must restore the exact pre-answer vector.
func (v ScoreVector) Subtract(d ScoreDelta) ScoreVector {
	return ScoreVector{
		Emotional:   v.Emotional - d.Emotional,
		Logical:     v.Logical - d.Logical,
		Exploratory: v.Exploratory - d.Exploratory,
	}
}

// IsZero reports whether no scored answer has contributed yet.
func (v ScoreVector) IsZero() bool {
	return v.Emotional == 0 && v.Logical == 0 && v.Exploratory == 0
}

// DistanceTo returns the Euclidean distance to another vector. Well defined
// for any pair of vectors, including the zero vector.
func (v ScoreVector) DistanceTo(other ScoreVector) float64 {
	de := float64(v.Emotional - other.Emotional)
	dl := float64(v.Logical - other.Logical)
	dx := float64(v.Exploratory - other.Exploratory)
	return math.Sqrt(de*de + dl*dl + dx*dx)
}

// Combine sums a set of deltas into one. Multi-select answers contribute
// every selected option's delta independently.
func Combine(deltas ...ScoreDelta) ScoreDelta {
	var total ScoreDelta
	for _, d := range deltas {
		total.Emotional += d.Emotional
		total.Logical += d.Logical
		total.Exploratory += d.Exploratory
	}
	return total
}
