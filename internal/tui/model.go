package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/form"
	"github.com/muurk/imc/internal/render"
	"github.com/muurk/imc/internal/ui"
)

// Focus positions
const (
	FocusHeight = iota
	FocusWeight
	FocusSubmit
	focusCount
)

// Field labels and placeholders
const (
	HeightLabel       = "Height:"
	WeightLabel       = "Weight:"
	HeightPlaceholder = "Enter your height (in meters)"
	WeightPlaceholder = "Enter your weight (in kg)"
	SubmitLabel       = "Calculate"
)

// submitResultMsg carries the outcome of one submission back to the loop.
type submitResultMsg struct {
	seq    int
	result *bmi.Result
	err    error
}

// FormModel is the interactive BMI form.
type FormModel struct {
	Controller *form.Controller
	Endpoint   string
	Verbose    bool // show error details under the alert

	Inputs []textinput.Model
	Focus  int

	// Submission state
	seq     int
	Pending bool
	Result  *bmi.Result
	Alert   bool
	LastErr error

	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap

	Width  int
	Height int
}

// NewFormModel creates the form bound to a controller. endpoint is only
// shown in the header.
func NewFormModel(ctrl *form.Controller, endpoint string) FormModel {
	height := textinput.New()
	height.Placeholder = HeightPlaceholder
	height.CharLimit = 16
	height.Width = InputWidth
	height.Focus()

	weight := textinput.New()
	weight.Placeholder = WeightPlaceholder
	weight.CharLimit = 16
	weight.Width = InputWidth

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return FormModel{
		Controller: ctrl,
		Endpoint:   endpoint,
		Inputs:     []textinput.Model{height, weight},
		Focus:      FocusHeight,
		Spinner:    s,
		Help:       help.New(),
		Keys:       newFormKeyMap(),
	}
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			m.Controller.Reset()
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Next):
			return m.setFocus(m.Focus + 1)

		case key.Matches(msg, m.Keys.Prev):
			return m.setFocus(m.Focus - 1)

		case key.Matches(msg, m.Keys.Clear):
			return m.clear()

		case key.Matches(msg, m.Keys.Submit):
			if m.Focus == FocusHeight {
				return m.setFocus(FocusWeight)
			}
			return m.submit()
		}

	case submitResultMsg:
		return m.handleResult(msg), nil

	case spinner.TickMsg:
		if !m.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

// updateInputs passes the message to the focused input
func (m FormModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Focus >= len(m.Inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.Inputs[m.Focus], cmd = m.Inputs[m.Focus].Update(msg)
	return m, cmd
}

// setFocus moves focus, wrapping around the two inputs and the button
func (m FormModel) setFocus(focus int) (tea.Model, tea.Cmd) {
	m.Focus = (focus%focusCount + focusCount) % focusCount

	var cmd tea.Cmd
	for i := range m.Inputs {
		if i == m.Focus {
			cmd = m.Inputs[i].Focus()
			m.Inputs[i].PromptStyle = FocusedInputStyle
			continue
		}
		m.Inputs[i].Blur()
		m.Inputs[i].PromptStyle = BlurredInputStyle
	}
	return m, cmd
}

// submit starts a new submission; a pending one is superseded.
// The spinner is already ticking while a submission is pending.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	wasPending := m.Pending
	m.seq++
	m.Pending = true

	cmds := []tea.Cmd{
		submitCmd(m.Controller, m.seq, m.Inputs[FocusHeight].Value(), m.Inputs[FocusWeight].Value()),
	}
	if !wasPending {
		cmds = append(cmds, m.Spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func submitCmd(ctrl *form.Controller, seq int, height, weight string) tea.Cmd {
	return func() tea.Msg {
		result, err := ctrl.Submit(context.Background(), height, weight)
		return submitResultMsg{seq: seq, result: result, err: err}
	}
}

// handleResult applies the outcome of the latest submission; stale ones are dropped
func (m FormModel) handleResult(msg submitResultMsg) FormModel {
	if msg.seq != m.seq || errors.Is(msg.err, form.ErrSuperseded) {
		return m
	}

	m.Pending = false
	if msg.err != nil {
		m.Result = nil
		m.Alert = true
		m.LastErr = msg.err
		return m
	}

	m.Result = msg.result
	m.Alert = false
	m.LastErr = nil
	return m
}

// clear resets inputs and display state
func (m FormModel) clear() (tea.Model, tea.Cmd) {
	m.Controller.Reset()
	m.seq++
	m.Pending = false
	m.Result = nil
	m.Alert = false
	m.LastErr = nil
	for i := range m.Inputs {
		m.Inputs[i].Reset()
	}
	return m.setFocus(FocusHeight)
}

// View renders the form
func (m FormModel) View() string {
	return RenderApplicationContainer(
		m.buildContent(),
		BuildHeaderContent(m.Endpoint),
		m.Help.View(m.Keys),
		m.Width,
		m.Height,
	)
}

func (m FormModel) buildContent() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("BMI calculation"))
	b.WriteString("\n")

	labels := []string{HeightLabel, WeightLabel}
	for i, input := range m.Inputs {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(labels[i]), input.View()))
		b.WriteString("\n\n")
	}

	if m.Focus == FocusSubmit {
		b.WriteString(FocusedButtonStyle.Render(SubmitLabel))
	} else {
		b.WriteString(ButtonStyle.Render(SubmitLabel))
	}
	if m.Pending {
		b.WriteString("  " + m.Spinner.View() + " Calculating...")
	}
	b.WriteString("\n\n")

	if m.Alert {
		b.WriteString(AlertStyle.Render(ui.FailureMarker + " " + form.AlertMessage))
		b.WriteString("\n")
		if m.Verbose && m.LastErr != nil {
			b.WriteString(DetailStyle.Render(calculator.ShortMessage(m.LastErr)))
			b.WriteString("\n")
		}
		return b.String()
	}

	view := render.Render(m.Result)
	if view.HasResult {
		b.WriteString(ui.SummaryStyle.Render("Your BMI is " + view.Summary))
		b.WriteString("\n\n")
		b.WriteString(ui.RenderTable(view))
		b.WriteString("\n")
	}

	return b.String()
}
