// Package calculator is the HTTP client for the BMI calculation service.
//
// The service is an external collaborator reached with one JSON exchange:
//
//	POST /imc/calculate
//	Content-Type: application/json
//
//	{"height": 1.75, "weight": 70}
//
// A 2xx answer carries {"imc": 22.86, "imcDescription": "Normal weight"}.
// Any other status is a hard failure and the body is not inspected.
//
// Failures are returned as *CalculationError. There are no retries; a
// submission either produces a result or an error.
//
// # Usage Example
//
//	client := calculator.NewClient("http://localhost:3000")
//	result, err := client.Calculate(ctx, bmi.Measurement{Height: 1.75, Weight: 70})
//	if err != nil {
//	    fmt.Println(calculator.ShortMessage(err))
//	}
package calculator
