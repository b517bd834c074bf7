package bmi

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field names used in validation errors
const (
	FieldHeight = "height"
	FieldWeight = "weight"
)

// Measurement is a person's height and weight as entered in the form.
type Measurement struct {
	Height float64 `json:"height"` // meters
	Weight float64 `json:"weight"` // kilograms
}

// Result is a computed body mass index and its classification label.
type Result struct {
	Value       float64 `json:"imc"`
	Description string  `json:"imcDescription"`
}

// ValidationError reports a form value that cannot be used for a calculation.
type ValidationError struct {
	Field   string // FieldHeight or FieldWeight
	Value   string // Raw text as entered
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ParseMeasurement builds a Measurement from the raw form text.
// Both values must be finite numbers greater than zero.
func ParseMeasurement(height, weight string) (Measurement, error) {
	h, err := parseField(FieldHeight, height)
	if err != nil {
		return Measurement{}, err
	}

	w, err := parseField(FieldWeight, weight)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Height: h, Weight: w}, nil
}

// Validate checks a Measurement that did not come from ParseMeasurement.
func (m Measurement) Validate() error {
	if err := checkValue(FieldHeight, "", m.Height); err != nil {
		return err
	}
	return checkValue(FieldWeight, "", m.Weight)
}

// Compute returns weight / height², the reference formula used by the local
// calculator service.
func (m Measurement) Compute() float64 {
	return m.Weight / (m.Height * m.Height)
}

// decimalPattern is plain decimal notation with an optional exponent.
// strconv.ParseFloat on its own also takes Go hex floats.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func parseField(field, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, &ValidationError{Field: field, Value: raw, Message: "value is required"}
	}

	// Accept a decimal comma ("1,75")
	text = strings.Replace(text, ",", ".", 1)
	if !decimalPattern.MatchString(text) {
		return 0, &ValidationError{Field: field, Value: raw, Message: "not a number"}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: raw, Message: "not a number"}
	}

	if err := checkValue(field, raw, v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkValue(field, raw string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: raw, Message: "not a finite number"}
	}
	if v <= 0 {
		return &ValidationError{Field: field, Value: raw, Message: "must be greater than zero"}
	}
	return nil
}
