package bmi

import "math"

// ClassificationRange maps the half-open interval [Min, Max) to a label.
type ClassificationRange struct {
	Min   float64
	Max   float64
	Label string
}

// Contains reports whether v falls in [Min, Max).
func (r ClassificationRange) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Unbounded reports whether the range has no upper limit.
func (r ClassificationRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

var ranges = [...]ClassificationRange{
	{Min: 0, Max: 18.4, Label: "Underweight"},
	{Min: 18.4, Max: 24.9, Label: "Normal weight"},
	{Min: 24.9, Max: 29.9, Label: "Overweight"},
	{Min: 29.9, Max: math.Inf(1), Label: "Obesity"},
}

// Ranges returns a copy of the classification table in display order.
func Ranges() []ClassificationRange {
	out := make([]ClassificationRange, len(ranges))
	copy(out, ranges[:])
	return out
}

// Classify returns the index in Ranges() of the range containing v.
// NaN and negative values match no range.
func Classify(v float64) (int, bool) {
	for i, r := range ranges {
		if r.Contains(v) {
			return i, true
		}
	}
	return -1, false
}

// Describe returns the label for v, or "" when no range matches.
func Describe(v float64) string {
	if i, ok := Classify(v); ok {
		return ranges[i].Label
	}
	return ""
}
