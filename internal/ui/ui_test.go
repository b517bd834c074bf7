package ui

import (
	"strings"
	"testing"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/render"
)

func TestRenderTable_NoResult(t *testing.T) {
	if got := RenderTable(render.Render(nil)); got != "" {
		t.Errorf("RenderTable() = %q, want empty", got)
	}
}

func TestRenderTable_MarksHighlightedRow(t *testing.T) {
	out := RenderTable(render.Render(&bmi.Result{Value: 22, Description: "Normal weight"}))

	for _, want := range []string{ColumnClassification, ColumnBMI, "Underweight", "Normal weight", "Overweight", "Obesity", "29.9 - ∞"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}

	if strings.Count(out, HighlightMarker) != 1 {
		t.Errorf("table should contain exactly one %s marker:\n%s", HighlightMarker, out)
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, HighlightMarker) && !strings.Contains(line, "Normal weight") {
			t.Errorf("marker on wrong row: %q", line)
		}
	}
}

func TestResult_Success(t *testing.T) {
	out := NewSuccessResult(render.Render(&bmi.Result{Value: 22, Description: "Normal weight"})).
		SetWidth(80).
		Render()

	if !strings.Contains(out, "Your BMI is 22 - Normal weight") {
		t.Errorf("success box should contain summary:\n%s", out)
	}
}

func TestResult_Failure(t *testing.T) {
	out := NewFailureResult("Error calculating BMI. Check the entered values.").
		SetWidth(80).
		AddDetail("HTTP Error: unexpected status code: 500").
		Render()

	if !strings.Contains(out, "Error calculating BMI.") {
		t.Errorf("failure box should contain alert:\n%s", out)
	}
	if strings.Contains(out, ColumnClassification) {
		t.Errorf("failure box must not contain the table:\n%s", out)
	}
}

func TestHeader_KeepsParamOrder(t *testing.T) {
	out := NewHeader("BMI calculation", "imc calc",
		Param{Key: "Endpoint", Value: "http://localhost:3000"},
		Param{Key: "Height", Value: "1.75"},
		Param{Key: "Weight", Value: "70"},
	).SetWidth(80).Render()

	if !strings.Contains(out, "BMI CALCULATION") {
		t.Errorf("header should contain uppercase title:\n%s", out)
	}
	e, h, w := strings.Index(out, "Endpoint"), strings.Index(out, "Height"), strings.Index(out, "Weight")
	if !(e < h && h < w) {
		t.Errorf("params out of order:\n%s", out)
	}
}
