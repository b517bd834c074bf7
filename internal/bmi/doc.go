// Package bmi holds the body mass index domain model.
//
// A Measurement is built from the raw text of the form at submission time and
// never outlives that submission. A Result is what the calculator service
// answers with. The classification table is fixed:
//
//	[0, 18.4)     Underweight
//	[18.4, 24.9)  Normal weight
//	[24.9, 29.9)  Overweight
//	[29.9, +Inf)  Obesity
//
// Ranges are half-open, so a value sitting exactly on a boundary belongs to the
// upper range (18.4 is "Normal weight", 29.9 is "Obesity").
//
// # Usage Example
//
//	m, err := bmi.ParseMeasurement("1.75", "70")
//	if err != nil {
//	    // err is a *bmi.ValidationError
//	}
//	idx, ok := bmi.Classify(22.86) // 1, true
package bmi
