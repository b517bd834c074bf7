// Package form implements the height/weight form controller.
//
// The controller owns the single current result. Submit validates the raw
// text, sends one request to the calculator, and replaces the current result
// on success. Any failed submission clears it. A newer submission cancels a
// pending one, and the superseded call returns ErrSuperseded without touching
// the current result.
package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/logging"
)

// AlertMessage is the one user-facing message for every failed submission.
const AlertMessage = "Error calculating BMI. Check the entered values."

// ErrSuperseded is returned by a submission that a newer one replaced.
var ErrSuperseded = errors.New("submission superseded by a newer one")

// Calculator computes a BMI result for a measurement.
// *calculator.Client satisfies it.
type Calculator interface {
	Calculate(ctx context.Context, m bmi.Measurement) (*bmi.Result, error)
}

// Option configures a Controller
type Option func(*Controller)

// WithIDGenerator overrides the request id source (tests use fixed ids).
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) {
		c.newID = gen
	}
}

// Controller is the form controller.
type Controller struct {
	calc  Calculator
	newID func() string

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current *bmi.Result
}

// New creates a controller that submits to calc.
func New(calc Calculator, opts ...Option) *Controller {
	c := &Controller{
		calc:  calc,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates height and weight and sends them to the calculator.
// It returns a *bmi.ValidationError without issuing a request when the
// values are unusable, and the calculator's error when the exchange fails.
func (c *Controller) Submit(ctx context.Context, height, weight string) (*bmi.Result, error) {
	ctx, seq := c.begin(ctx)

	m, err := bmi.ParseMeasurement(height, weight)
	if err != nil {
		logging.Debug("Submission rejected", zap.Error(err))
		c.fail(seq)
		return nil, err
	}

	id := c.newID()
	ctx = calculator.WithRequestID(ctx, id)
	logging.LogSubmission(id, m.Height, m.Weight)

	start := time.Now()
	result, err := c.calc.Calculate(ctx, m)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		logging.Debug("Dropping superseded submission", zap.String("request_id", id))
		return nil, ErrSuperseded
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		logging.Warn("Calculation failed",
			zap.String("request_id", id),
			zap.String("reason", calculator.ShortMessage(err)),
			zap.Error(err),
		)
		c.current = nil
		return nil, err
	}

	logging.LogCalculation(id, result.Value, result.Description, time.Since(start))
	stored := *result
	c.current = &stored

	out := stored
	return &out, nil
}

// Current returns a copy of the current result, or nil.
func (c *Controller) Current() *bmi.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	out := *c.current
	return &out
}

// Reset clears the current result and abandons any pending submission.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.current = nil
}

// begin registers a new submission, cancelling the pending one.
func (c *Controller) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	c.cancel = cancel
	return ctx, c.seq
}

// fail clears the current result if seq is still the latest submission.
func (c *Controller) fail(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.current = nil
}
