// Package pipeline implements the round-up savings computation: enrichment,
// validation, period-based remnant adjustment and returns projection. All
// state lives on the stack of a single call; an Engine is safe for
// concurrent use by multiple requests.
package pipeline

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Engine runs savings computations. The logger is the only dependency;
// callers that want silence pass zerolog.Nop().
type Engine struct {
	log zerolog.Logger
}

// New creates an Engine that logs diagnostics to the given logger.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// round2 rounds a monetary value to 2 decimal places. Only applied at the
// point of emission; intermediate math keeps full float64 precision.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
