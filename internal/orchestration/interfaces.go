//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"time"
)

// StepResult encapsulates the outcome of a single step.
type StepResult struct {
	// Name identifies the step (e.g., "fib").
	Name string
	// Line is the text the step produced. It is empty if an error occurred.
	Line string
	// Duration is the time taken by the step.
	Duration time.Duration
	// Err contains any error returned by the step.
	Err error
}

// Step is one independent demo computation.
type Step interface {
	// Name returns the identifier used in logs, metrics and spans.
	Name() string
	// Run performs the computation and returns the line to print.
	Run(ctx context.Context) (string, error)
}

// ResultPresenter displays successful step results.
type ResultPresenter interface {
	PresentResult(result StepResult, out io.Writer)
}

// StepObserver is notified after every executed step.
type StepObserver interface {
	ObserveStep(step string, d time.Duration, err error)
}

// ResultPresenterFunc is a function adapter that implements ResultPresenter.
type ResultPresenterFunc func(result StepResult, out io.Writer)

// PresentResult calls the underlying function.
func (f ResultPresenterFunc) PresentResult(result StepResult, out io.Writer) {
	f(result, out)
}

// NullObserver discards step observations.
type NullObserver struct{}

// ObserveStep does nothing.
func (NullObserver) ObserveStep(string, time.Duration, error) {}

type funcStep struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// NewStep builds a Step from a name and a function.
func NewStep(name string, run func(ctx context.Context) (string, error)) Step {
	return funcStep{name: name, run: run}
}

func (s funcStep) Name() string { return s.name }

func (s funcStep) Run(ctx context.Context) (string, error) { return s.run(ctx) }
