// Package calc applies a resolved unary function to a stream of input records.
package calc

import (
	"errors"
	"fmt"
	"iter"

	"github.com/joeydtaylor/steeze-calc/pkg/mathfn"
	"go.uber.org/zap"
)

// Result is one output record: the echoed input and the computed value.
type Result struct {
	X float64
	Y float64
}

// Calculator is immutable once built and safe for concurrent requests.
type Calculator struct {
	fn  mathfn.Unary
	log *zap.Logger
}

func New(fn mathfn.Unary, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{fn: fn, log: log}
}

// Name is the configured function name, used as the result key.
func (c *Calculator) Name() string { return c.fn.Name() }

// Integral reports whether results are integer valued.
func (c *Calculator) Integral() bool { return c.fn.Integral() }

// Stream lazily applies the function to values in order. Inputs outside the
// function's domain are logged and skipped. Any other error is yielded once
// and ends the sequence.
func (c *Calculator) Stream(values iter.Seq[Value]) iter.Seq2[Result, error] {
	name := c.fn.Name()
	return func(yield func(Result, error) bool) {
		for v := range values {
			y, err := c.fn.Call(v.X)
			switch {
			case err == nil:
				results.WithLabelValues(name, outcomeOK).Inc()
				if !yield(Result{X: v.X, Y: y}, nil) {
					return
				}
			case errors.Is(err, mathfn.ErrDomain):
				results.WithLabelValues(name, outcomeSkipped).Inc()
				c.log.Warn("value is not a valid input",
					zap.String("expr", name),
					zap.Float64("x", v.X),
					zap.Error(err),
				)
			default:
				results.WithLabelValues(name, outcomeFailed).Inc()
				yield(Result{}, fmt.Errorf("%s(%v): %w", name, v.X, err))
				return
			}
		}
	}
}
