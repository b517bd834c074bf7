package server

import (
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/muurk/imc/internal/bmi"
	"github.com/muurk/imc/internal/calculator"
	"github.com/muurk/imc/internal/logging"
)

// HealthPath answers liveness probes
const HealthPath = "/health"

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// Route dispatches a request to the calculation or health handler.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case calculator.CalculatePath:
		if !ctx.IsPost() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		HandleCalculation(ctx)

	case HealthPath:
		if !ctx.IsGet() && !ctx.IsHead() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodGet)
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})

	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// HandleCalculation computes the BMI of the posted measurement.
func HandleCalculation(ctx *fasthttp.RequestCtx) {
	body := ctx.PostBody()
	logging.LogRawBody("Calculation request body", body)

	var req calculator.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m := bmi.Measurement{Height: req.Height, Weight: req.Weight}
	if err := m.Validate(); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	raw := m.Compute()
	if math.IsInf(raw, 0) || math.IsNaN(raw) {
		writeError(ctx, fasthttp.StatusBadRequest, "BMI is not a finite number for these values")
		return
	}

	value := Round(raw)
	writeJSON(ctx, fasthttp.StatusOK, calculator.Response{
		IMC:            value,
		IMCDescription: bmi.Describe(value),
	})
}

// Round rounds v to two decimals
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// WithRequestLogging logs every request served by next.
func WithRequestLogging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		logging.LogHTTPRequest(
			ctx.RemoteAddr().String(),
			string(ctx.Method()),
			string(ctx.Path()),
			ctx.Response.StatusCode(),
			time.Since(start),
		)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
