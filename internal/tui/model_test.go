package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/form"
)

type stubCalculator struct {
	result *bmi.Result
	err    error
	calls  int
}

func (s *stubCalculator) Calculate(ctx context.Context, m bmi.Measurement) (*bmi.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := *s.result
	return &out, nil
}

func newTestModel(calc form.Calculator) FormModel {
	m := NewFormModel(form.New(calc), "http://localhost:3000")
	m.Width = 100
	m.Height = 40
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// runSubmission executes the command returned by a submit and feeds the
// submission result back into the model.
func runSubmission(t *testing.T, m FormModel, cmd tea.Cmd) FormModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}

	var cmds []tea.Cmd
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		cmds = msg
	case submitResultMsg:
		updated, _ := m.Update(msg)
		return updated.(FormModel)
	default:
		t.Fatalf("unexpected message from submit: %T", msg)
	}

	for _, c := range cmds {
		if c == nil {
			continue
		}
		if msg, ok := c().(submitResultMsg); ok {
			updated, _ := m.Update(msg)
			return updated.(FormModel)
		}
	}
	t.Fatal("no submission result in batch")
	return m
}

func TestFormModel_Initial(t *testing.T) {
	m := newTestModel(&stubCalculator{})

	if m.Focus != FocusHeight {
		t.Errorf("Focus = %d, want %d", m.Focus, FocusHeight)
	}
	if !m.Inputs[FocusHeight].Focused() {
		t.Error("height input should be focused")
	}
	if m.Inputs[FocusHeight].Placeholder != HeightPlaceholder {
		t.Errorf("height placeholder = %q", m.Inputs[FocusHeight].Placeholder)
	}
	if m.Inputs[FocusWeight].Placeholder != WeightPlaceholder {
		t.Errorf("weight placeholder = %q", m.Inputs[FocusWeight].Placeholder)
	}

	view := m.View()
	for _, want := range []string{HeightLabel, WeightLabel, SubmitLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if strings.Contains(view, "Your BMI is") {
		t.Error("view should not show a result before any submission")
	}
}

func TestFormModel_FocusNavigation(t *testing.T) {
	m := newTestModel(&stubCalculator{})

	tests := []struct {
		name string
		key  tea.KeyType
		want int
	}{
		{"tab to weight", tea.KeyTab, FocusWeight},
		{"down to submit", tea.KeyDown, FocusSubmit},
		{"tab wraps to height", tea.KeyTab, FocusHeight},
		{"shift+tab wraps to submit", tea.KeyShiftTab, FocusSubmit},
		{"up to weight", tea.KeyUp, FocusWeight},
	}

	for _, tt := range tests {
		updated, _ := m.Update(keyMsg(tt.key))
		m = updated.(FormModel)
		if m.Focus != tt.want {
			t.Errorf("%s: Focus = %d, want %d", tt.name, m.Focus, tt.want)
		}
	}
}

func TestFormModel_EnterOnHeightMovesFocus(t *testing.T) {
	calc := &stubCalculator{result: &bmi.Result{Value: 22, Description: "Normal weight"}}
	m := newTestModel(calc)

	updated, _ := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(FormModel)

	if m.Focus != FocusWeight {
		t.Errorf("Focus = %d, want %d", m.Focus, FocusWeight)
	}
	if m.Pending {
		t.Error("enter on height should not submit")
	}
}

// countTicks runs cmd and counts the spinner ticks it produces.
func countTicks(cmd tea.Cmd) int {
	if cmd == nil {
		return 0
	}
	var cmds []tea.Cmd
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		cmds = msg
	case spinner.TickMsg:
		return 1
	default:
		return 0
	}

	n := 0
	for _, c := range cmds {
		if c == nil {
			continue
		}
		if _, ok := c().(spinner.TickMsg); ok {
			n++
		}
	}
	return n
}

func TestFormModel_ResubmitKeepsOneSpinner(t *testing.T) {
	calc := &stubCalculator{result: &bmi.Result{Value: 22.86, Description: "Normal weight"}}
	m := newTestModel(calc)
	m.Inputs[FocusHeight].SetValue("1.75")
	m.Inputs[FocusWeight].SetValue("70")
	m.Focus = FocusWeight

	updated, first := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(FormModel)
	updated, second := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(FormModel)

	if got := countTicks(first); got != 1 {
		t.Errorf("first submit ticks = %d, want 1", got)
	}
	if got := countTicks(second); got != 0 {
		t.Errorf("resubmit while pending ticks = %d, want 0", got)
	}
	if !m.Pending {
		t.Error("model should still be pending")
	}
}

func TestFormModel_SubmitSuccess(t *testing.T) {
	calc := &stubCalculator{result: &bmi.Result{Value: 22.86, Description: "Normal weight"}}
	m := newTestModel(calc)
	m.Inputs[FocusHeight].SetValue("1.75")
	m.Inputs[FocusWeight].SetValue("70")
	m.Focus = FocusWeight

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(FormModel)
	if !m.Pending {
		t.Fatal("model should be pending after submit")
	}
	if !strings.Contains(m.View(), "Calculating...") {
		t.Error("view should show the spinner while pending")
	}

	m = runSubmission(t, m, cmd)

	if m.Pending {
		t.Error("model should not be pending after the result")
	}
	if calc.calls != 1 {
		t.Errorf("calculator calls = %d, want 1", calc.calls)
	}

	view := m.View()
	if !strings.Contains(view, "Your BMI is 22.86 - Normal weight") {
		t.Errorf("view should contain the summary:\n%s", view)
	}
	if !strings.Contains(view, "Obesity") {
		t.Error("view should contain the classification table")
	}
	if strings.Contains(view, form.AlertMessage) {
		t.Error("view should not contain the alert")
	}
}

func TestFormModel_SubmitValidationFailure(t *testing.T) {
	calc := &stubCalculator{result: &bmi.Result{Value: 22, Description: "Normal weight"}}
	m := newTestModel(calc)
	m.Inputs[FocusHeight].SetValue("abc")
	m.Inputs[FocusWeight].SetValue("70")
	m.Focus = FocusSubmit

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = runSubmission(t, updated.(FormModel), cmd)

	if calc.calls != 0 {
		t.Errorf("calculator calls = %d, want 0", calc.calls)
	}
	if !m.Alert {
		t.Error("alert should be shown")
	}
	if !strings.Contains(m.View(), form.AlertMessage) {
		t.Error("view should contain the alert message")
	}
}

func TestFormModel_FailureHidesPreviousResult(t *testing.T) {
	calc := &stubCalculator{result: &bmi.Result{Value: 22, Description: "Normal weight"}}
	m := newTestModel(calc)
	m.Inputs[FocusHeight].SetValue("1.75")
	m.Inputs[FocusWeight].SetValue("70")
	m.Focus = FocusSubmit

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = runSubmission(t, updated.(FormModel), cmd)
	if m.Result == nil {
		t.Fatal("expected a result after the first submission")
	}

	calc.err = calculator.NewHTTPError(500, "unexpected status code: 500")
	updated, cmd = m.Update(keyMsg(tea.KeyEnter))
	m = runSubmission(t, updated.(FormModel), cmd)

	if m.Result != nil {
		t.Error("result should be cleared after a failure")
	}
	view := m.View()
	if strings.Contains(view, "Your BMI is") || strings.Contains(view, "Underweight") {
		t.Errorf("view should not show a stale table:\n%s", view)
	}
	if !strings.Contains(view, form.AlertMessage) {
		t.Error("view should contain the alert message")
	}
}

func TestFormModel_DropsStaleResult(t *testing.T) {
	m := newTestModel(&stubCalculator{})
	m.seq = 2
	m.Pending = true

	updated, _ := m.Update(submitResultMsg{seq: 1, result: &bmi.Result{Value: 40, Description: "Obesity"}})
	m = updated.(FormModel)

	if m.Result != nil {
		t.Error("stale result should be dropped")
	}
	if !m.Pending {
		t.Error("latest submission should still be pending")
	}

	updated, _ = m.Update(submitResultMsg{seq: 2, err: form.ErrSuperseded})
	m = updated.(FormModel)
	if m.Alert {
		t.Error("superseded submission should not raise the alert")
	}
}

func TestFormModel_Clear(t *testing.T) {
	m := newTestModel(&stubCalculator{})
	m.Inputs[FocusHeight].SetValue("1.75")
	m.Inputs[FocusWeight].SetValue("70")
	m.Result = &bmi.Result{Value: 22, Description: "Normal weight"}
	m.Alert = true
	m.LastErr = errors.New("boom")
	m.Focus = FocusSubmit

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = updated.(FormModel)

	if m.Result != nil || m.Alert || m.LastErr != nil {
		t.Error("display state should be cleared")
	}
	for i, input := range m.Inputs {
		if input.Value() != "" {
			t.Errorf("input %d = %q, want empty", i, input.Value())
		}
	}
	if m.Focus != FocusHeight {
		t.Errorf("Focus = %d, want %d", m.Focus, FocusHeight)
	}
}

func TestFormModel_Quit(t *testing.T) {
	m := newTestModel(&stubCalculator{})

	_, cmd := m.Update(keyMsg(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}
