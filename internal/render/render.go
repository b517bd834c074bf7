// Package render turns the current BMI result into a display model.
//
// Render is a pure function: the same result always yields the same View, and
// a nil result yields an empty View. Drawing (colors, borders) is left to the
// callers in internal/ui and internal/tui.
package render

import (
	"strconv"

	"github.com/muurk/imc/internal/bmi"
)

// Row is one line of the classification table.
type Row struct {
	Label       string
	Interval    string
	Highlighted bool
}

// View is everything needed to display a result.
type View struct {
	HasResult bool
	Summary   string // "<value> - <description>"
	Rows      []Row
}

// HighlightedIndex returns the index of the highlighted row, or -1.
func (v View) HighlightedIndex() int {
	for i, row := range v.Rows {
		if row.Highlighted {
			return i
		}
	}
	return -1
}

// Render builds the View for result. A nil result renders nothing.
func Render(result *bmi.Result) View {
	if result == nil {
		return View{}
	}

	ranges := bmi.Ranges()
	rows := make([]Row, len(ranges))
	for i, r := range ranges {
		rows[i] = Row{
			Label:       r.Label,
			Interval:    Interval(r),
			Highlighted: r.Contains(result.Value),
		}
	}

	return View{
		HasResult: true,
		Summary:   Summary(result),
		Rows:      rows,
	}
}

// Summary formats a result as "<value> - <description>".
func Summary(result *bmi.Result) string {
	return FormatNumber(result.Value) + " - " + result.Description
}

// Interval formats a range as "min - max", using ∞ for the open end.
func Interval(r bmi.ClassificationRange) string {
	if r.Unbounded() {
		return FormatNumber(r.Min) + " - ∞"
	}
	return FormatNumber(r.Min) + " - " + FormatNumber(r.Max)
}

// FormatNumber prints v in its shortest exact form (22 rather than 22.00).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
