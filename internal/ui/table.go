package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/imc/internal/render"
)

// Table column headers
const (
	ColumnClassification = "Classification"
	ColumnBMI            = "BMI"
)

// RenderTable draws the classification table of v.
// It returns "" when v has no result, so callers can append it blindly.
func RenderTable(v render.View) string {
	if !v.HasResult {
		return ""
	}

	rows := make([][]string, len(v.Rows))
	for i, row := range v.Rows {
		label := "  " + row.Label
		if row.Highlighted {
			label = HighlightMarker + " " + row.Label
		}
		rows[i] = []string{label, row.Interval}
	}

	highlighted := v.HighlightedIndex()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(PrimaryColor)).
		Headers(ColumnClassification, ColumnBMI).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row == highlighted:
				return TableHighlightStyle
			default:
				return TableCellStyle
			}
		})

	return t.Render()
}
