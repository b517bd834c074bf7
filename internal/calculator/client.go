package calculator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/logging"
	"github.com/muurk/imc/internal/version"
)

const (
	// DefaultBaseURL is where the calculator service listens in development
	DefaultBaseURL = "http://localhost:3000"

	// CalculatePath is the endpoint path of the calculation
	CalculatePath = "/imc/calculate"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries the submission id for log correlation
	RequestIDHeader = "X-Request-ID"

	// maxResponseSize bounds the success body we are willing to read
	maxResponseSize = 64 << 10
)

// Request is the wire body of a calculation.
type Request struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// Response is the wire body of a successful calculation.
type Response struct {
	IMC            float64 `json:"imc"`
	IMCDescription string  `json:"imcDescription"`
}

// Client talks to a calculator service.
type Client struct {
	// BaseURL is the service base URL (e.g., "http://localhost:3000")
	BaseURL string

	// Path is the calculation path below BaseURL (default CalculatePath)
	Path string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Path:       CalculatePath,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetPath sets the calculation path. An empty path selects CalculatePath.
func (c *Client) SetPath(path string) {
	if path == "" {
		path = CalculatePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	c.Path = path
}

// Endpoint returns the full calculation URL
func (c *Client) Endpoint() string {
	if c.Path == "" {
		return c.BaseURL + CalculatePath
	}
	return c.BaseURL + c.Path
}

// Calculate sends m to the service and returns its answer.
func (c *Client) Calculate(ctx context.Context, m bmi.Measurement) (*bmi.Result, error) {
	body, err := json.Marshal(Request{Height: m.Height, Weight: m.Weight})
	if err != nil {
		return nil, NewParseError("failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, NewNetworkError("failed to create POST request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	logging.LogRawBody("Calculation request", body)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, NewCanceledError(err)
		}
		return nil, NewNetworkError("POST request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.LogRawBody("Calculation response", data)

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}

	return &bmi.Result{Value: out.IMC, Description: out.IMCDescription}, nil
}

// Ping checks that something answers HTTP at the base URL.
// Any status code counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return NewNetworkError("failed to create ping request", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("calculator unreachable", err)
	}
	_ = resp.Body.Close()

	return nil
}

type requestIDKey struct{}

// WithRequestID attaches a submission id that Calculate forwards in the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
