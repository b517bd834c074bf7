package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/imc/internal/ui"
	"github.com/muurk/imc/internal/version"
)

// AppName is shown in the header of every screen
const AppName = "BMI CALCULATOR"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	InputWidth    = 32
	LabelWidth    = 9
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Width(LabelWidth)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(ui.PrimaryColor).
				Bold(true)

	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.MutedColor).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor).
				Background(ui.PrimaryColor).
				Bold(true).
				Padding(0, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor)

	AlertStyle = lipgloss.NewStyle().
			Foreground(ui.ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ErrorColor).
			Padding(0, 2)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)
)

// BuildHeaderContent creates header content with app name, version and endpoint
func BuildHeaderContent(endpoint string) string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(endpoint)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps a screen with the application header,
// a footer carrying the help text and an outer border filling the terminal.
func RenderApplicationContainer(content, header, footer string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(header)

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Foreground(ui.MutedColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(footer)

	styledContent := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 2).
		Render(content)

	inner := lipgloss.JoinVertical(lipgloss.Left, styledHeader, styledContent, styledFooter)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
