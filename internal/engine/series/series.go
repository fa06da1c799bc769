// Package series implements an ordered step runner.
package series

import (
	"context"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
)

// Step is a named unit of work run by a Runner.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes steps strictly one after another.
type Runner struct {
	telemetry ports.Telemetry
}

// NewRunner creates a new Runner recording each step through telemetry.
func NewRunner(telemetry ports.Telemetry) *Runner {
	return &Runner{
		telemetry: telemetry,
	}
}

// Run executes steps in slice order. Each step starts only after the previous
// one has returned. The first error aborts the sequence and is returned as is;
// later steps never start. A cancelled context stops the sequence before the
// next step starts.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		stepCtx, vertex := r.telemetry.Record(ctx, step.Name)
		err := step.Run(stepCtx)
		if err != nil {
			vertex.Log(domain.LogLevelError, err.Error())
		}
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}
	return nil
}
