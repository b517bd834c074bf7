package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/imc/internal/render"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result is the box printed at the end of 'imc calc'.
type Result struct {
	Type            ResultType
	View            render.View // Success only
	Alert           string      // Failure only: the generic user-facing message
	Details         []string    // Failure only: shown with --verbose
	Troubleshooting string      // Failure only: shown with --verbose
	Width           int
}

// NewSuccessResult creates a success box for a rendered result
func NewSuccessResult(v render.View) *Result {
	return &Result{
		Type:  ResultSuccess,
		View:  v,
		Width: GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure box carrying the generic alert
func NewFailureResult(alert string) *Result {
	return &Result{
		Type:  ResultFailure,
		Alert: alert,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line to a failure box
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// SetTroubleshooting sets the troubleshooting block of a failure box
func (r *Result) SetTroubleshooting(hint string) *Result {
	r.Troubleshooting = hint
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) width() int {
	if r.Width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return r.Width
}

func (r *Result) renderSuccess() string {
	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf("%s  BMI CALCULATED", SuccessMarker)),
		"",
		SummaryStyle.Render("Your BMI is " + r.View.Summary),
		"",
		RenderTable(r.View),
		"",
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(r.width()-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED", FailureMarker)),
		"",
		ErrorMessageStyle.Render(r.Alert),
		"",
	}

	for _, d := range r.Details {
		lines = append(lines, TroubleshootingItemStyle.Render(d))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Troubleshooting != "" {
		lines = append(lines, TroubleshootingItemStyle.Render(r.Troubleshooting), "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(r.width()-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
