// Package tui implements the interactive BMI form.
//
// The form is a single Bubble Tea screen following the Model-Update-View
// pattern:
//
//   - Two text inputs (height in meters, weight in kilograms)
//   - A submit control
//   - A result area showing "Your BMI is <value> - <description>"
//   - The classification table with the matching row highlighted
//   - A generic alert box when a submission fails
//
// Submissions run as a tea.Cmd through a form.Controller, so the event loop
// stays responsive while a request is in flight. Each submission is tagged
// with a sequence number and any response that is not for the latest
// submission is dropped.
//
// # Key Bindings
//
//   - tab / ↓: next field
//   - shift+tab / ↑: previous field
//   - enter: next field, or submit from the weight field and the button
//   - ctrl+r: clear the form
//   - esc / ctrl+c: quit
//
// # Usage Example
//
//	ctrl := form.New(calculator.NewClient("http://localhost:3000"))
//	model := tui.NewFormModel(ctrl, "http://localhost:3000")
//	program := tea.NewProgram(model, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
