package render

import (
	"testing"

	"github.com/muurk/imc/internal/bmi"
)

func TestRender_NilResult(t *testing.T) {
	v := Render(nil)

	if v.HasResult {
		t.Error("HasResult should be false for nil result")
	}
	if v.Summary != "" {
		t.Errorf("Summary = %q, want empty", v.Summary)
	}
	if len(v.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(v.Rows))
	}
	if v.HighlightedIndex() != -1 {
		t.Errorf("HighlightedIndex() = %d, want -1", v.HighlightedIndex())
	}
}

func TestRender_NormalWeight(t *testing.T) {
	v := Render(&bmi.Result{Value: 22.0, Description: "Normal weight"})

	if !v.HasResult {
		t.Fatal("HasResult should be true")
	}
	if v.Summary != "22 - Normal weight" {
		t.Errorf("Summary = %q, want %q", v.Summary, "22 - Normal weight")
	}
	if len(v.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(v.Rows))
	}

	highlighted := 0
	for _, row := range v.Rows {
		if row.Highlighted {
			highlighted++
		}
	}
	if highlighted != 1 {
		t.Errorf("highlighted rows = %d, want exactly 1", highlighted)
	}
	if v.HighlightedIndex() != 1 {
		t.Errorf("HighlightedIndex() = %d, want 1", v.HighlightedIndex())
	}
	if v.Rows[1].Interval != "18.4 - 24.9" {
		t.Errorf("Rows[1].Interval = %q, want 18.4 - 24.9", v.Rows[1].Interval)
	}
}

func TestRender_Boundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{0, 0},
		{18.3, 0},
		{18.4, 1},
		{24.9, 2},
		{29.9, 3},
		{52.1, 3},
		{-1, -1},
	}

	for _, tt := range tests {
		v := Render(&bmi.Result{Value: tt.value, Description: "x"})
		if got := v.HighlightedIndex(); got != tt.want {
			t.Errorf("Render(%v).HighlightedIndex() = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestRender_FixedOrder(t *testing.T) {
	v := Render(&bmi.Result{Value: 31, Description: "Obesity"})

	wantLabels := []string{"Underweight", "Normal weight", "Overweight", "Obesity"}
	wantIntervals := []string{"0 - 18.4", "18.4 - 24.9", "24.9 - 29.9", "29.9 - ∞"}

	for i := range wantLabels {
		if v.Rows[i].Label != wantLabels[i] {
			t.Errorf("Rows[%d].Label = %q, want %q", i, v.Rows[i].Label, wantLabels[i])
		}
		if v.Rows[i].Interval != wantIntervals[i] {
			t.Errorf("Rows[%d].Interval = %q, want %q", i, v.Rows[i].Interval, wantIntervals[i])
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		22:    "22",
		22.5:  "22.5",
		22.86: "22.86",
		0:     "0",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
