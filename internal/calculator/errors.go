package calculator

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of a calculation failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the service did not answer in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing listens at the endpoint
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the service host could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-success status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed request or response body
	ErrTypeParse
	// ErrTypeCanceled indicates the caller abandoned the request
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// CalculationError is returned when the calculator exchange fails at the
// transport level or with a non-success status.
type CalculationError struct {
	Type       ErrorType
	Message    string
	StatusCode int   // HTTP status code (ErrTypeHTTP only)
	Err        error // Underlying error (if any)
}

// Error implements the error interface
func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CalculationError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more
// specific error type
func ClassifyNetworkError(err error) *CalculationError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &CalculationError{Type: ErrTypeTimeout, Message: "Request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &CalculationError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &CalculationError{Type: ErrTypeConnectionRefused, Message: "Calculator refused connection", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err)
	}

	return &CalculationError{Type: ErrTypeNetwork, Message: "Network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *CalculationError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &CalculationError{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *CalculationError {
	return &CalculationError{Type: ErrTypeHTTP, Message: message, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *CalculationError {
	return &CalculationError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewCanceledError creates an error for a request abandoned by its caller
func NewCanceledError(err error) *CalculationError {
	return &CalculationError{Type: ErrTypeCanceled, Message: "request canceled", Err: err}
}

func asCalculationError(err error) (*CalculationError, bool) {
	var calcErr *CalculationError
	ok := errors.As(err, &calcErr)
	return calcErr, ok
}

// IsCalculationError checks if err is (or wraps) a CalculationError
func IsCalculationError(err error) bool {
	_, ok := asCalculationError(err)
	return ok
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	if calcErr, ok := asCalculationError(err); ok {
		return calcErr.Type == ErrTypeHTTP
	}
	return false
}

// ShortMessage returns a concise error message for logs and --verbose output
func ShortMessage(err error) string {
	calcErr, ok := asCalculationError(err)
	if !ok {
		return err.Error()
	}

	switch calcErr.Type {
	case ErrTypeTimeout:
		return "Calculator not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Calculator refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve calculator hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Calculator error (HTTP %d)", calcErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse calculator response"
	case ErrTypeCanceled:
		return "Request canceled"
	default:
		return calcErr.Message
	}
}

// TroubleshootingHint returns troubleshooting advice for an error
func TroubleshootingHint(err error) string {
	calcErr, ok := asCalculationError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch calcErr.Type {
	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return strings.Join([]string{
			"The calculator service could not be reached.",
			"Troubleshooting:",
			"  • Start a local calculator with 'imc serve'",
			"  • Check the --endpoint value (default " + DefaultBaseURL + ")",
			"  • Use 'imc scan' to find calculators on the network",
		}, "\n")
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The calculator service did not answer in time.",
			"Troubleshooting:",
			"  • Try increasing --timeout",
			"  • Check the service logs for slow requests",
		}, "\n")
	case ErrTypeDNS:
		return "Could not resolve the calculator hostname. Use an IP address or check DNS settings."
	case ErrTypeHTTP:
		if calcErr.StatusCode >= 500 {
			return fmt.Sprintf("The calculator failed internally (HTTP %d). Check the service logs.", calcErr.StatusCode)
		}
		return fmt.Sprintf("The calculator rejected the request (HTTP %d). Check the entered values.", calcErr.StatusCode)
	case ErrTypeParse:
		return "The calculator answered with an unexpected body. Check that --endpoint points at a BMI calculator."
	default:
		return "An error occurred. Please check the error message for details."
	}
}
