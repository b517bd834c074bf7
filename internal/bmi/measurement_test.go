package bmi

import (
	"fmt"
	"math"
	"testing"
)

func TestParseMeasurement_Valid(t *testing.T) {
	tests := []struct {
		name       string
		height     string
		weight     string
		wantHeight float64
		wantWeight float64
	}{
		{"plain values", "1.75", "70", 1.75, 70},
		{"surrounding spaces", " 1.80 ", " 82.5 ", 1.80, 82.5},
		{"decimal comma", "1,75", "70,3", 1.75, 70.3},
		{"integer height", "2", "100", 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMeasurement(tt.height, tt.weight)
			if err != nil {
				t.Fatalf("ParseMeasurement() error = %v", err)
			}
			if m.Height != tt.wantHeight {
				t.Errorf("Height = %v, want %v", m.Height, tt.wantHeight)
			}
			if m.Weight != tt.wantWeight {
				t.Errorf("Weight = %v, want %v", m.Weight, tt.wantWeight)
			}
		})
	}
}

func TestParseMeasurement_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		height    string
		weight    string
		wantField string
	}{
		{"empty height", "", "70", FieldHeight},
		{"blank height", "   ", "70", FieldHeight},
		{"empty weight", "1.75", "", FieldWeight},
		{"zero height", "0", "70", FieldHeight},
		{"zero weight", "1.75", "0.0", FieldWeight},
		{"negative weight", "1.75", "-70", FieldWeight},
		{"non-numeric height", "abc", "70", FieldHeight},
		{"non-numeric weight", "1.75", "seventy", FieldWeight},
		{"NaN height", "NaN", "70", FieldHeight},
		{"infinite weight", "1.75", "Inf", FieldWeight},
		{"trailing garbage", "1.75m", "70", FieldHeight},
		{"hex float height", "0x1.cp0", "70", FieldHeight},
		{"hex float weight", "1.75", "0x46p0", FieldWeight},
		{"digit separators", "1.75", "7_0", FieldWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMeasurement(tt.height, tt.weight)
			if err == nil {
				t.Fatal("ParseMeasurement() should return error")
			}
			if !IsValidationError(err) {
				t.Fatalf("error should be validation error, got %T", err)
			}
			vErr := err.(*ValidationError)
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestParseMeasurement_Exponent(t *testing.T) {
	m, err := ParseMeasurement("175e-2", "7E1")
	if err != nil {
		t.Fatalf("ParseMeasurement() error = %v", err)
	}
	if m.Height != 1.75 || m.Weight != 70 {
		t.Errorf("m = %+v, want {1.75 70}", m)
	}
}

func TestIsValidationError_Wrapped(t *testing.T) {
	_, err := ParseMeasurement("0x1.cp0", "0x46p0")
	if !IsValidationError(fmt.Errorf("submit: %w", err)) {
		t.Errorf("IsValidationError should see through wrapping, got %v", err)
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Error("plain error is not a validation error")
	}
}

func TestMeasurement_Validate(t *testing.T) {
	if err := (Measurement{Height: 1.75, Weight: 70}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (Measurement{Height: 0, Weight: 70}).Validate(); !IsValidationError(err) {
		t.Errorf("Validate() zero height error = %v, want validation error", err)
	}
	if err := (Measurement{Height: 1.75, Weight: math.NaN()}).Validate(); !IsValidationError(err) {
		t.Errorf("Validate() NaN weight error = %v, want validation error", err)
	}
}

func TestMeasurement_Compute(t *testing.T) {
	m := Measurement{Height: 2, Weight: 100}
	if got := m.Compute(); got != 25 {
		t.Errorf("Compute() = %v, want 25", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: FieldHeight, Value: "abc", Message: "not a number"}
	if got := err.Error(); got != `invalid height "abc": not a number` {
		t.Errorf("Error() = %q", got)
	}

	err = &ValidationError{Field: FieldWeight, Message: "value is required"}
	if got := err.Error(); got != "invalid weight: value is required" {
		t.Errorf("Error() = %q", got)
	}
}
