package orchestration

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/logging"
)

// TracerName is the instrumentation scope of the executor's spans.
const TracerName = "github.com/agbru/snippets/internal/orchestration"

// Executor runs steps sequentially.
type Executor struct {
	presenter ResultPresenter
	observer  StepObserver
	logger    logging.Logger
	tracer    trace.Tracer
}

// ExecutorOption configures an Executor during construction.
type ExecutorOption func(*Executor)

// WithObserver sets the observer notified after each step.
func WithObserver(o StepObserver) ExecutorOption {
	return func(e *Executor) { e.observer = o }
}

// WithLogger sets the logger for per-step debug entries.
func WithLogger(l logging.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = l }
}

// WithTracer overrides the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) ExecutorOption {
	return func(e *Executor) { e.tracer = t }
}

// NewExecutor creates an Executor that hands results to presenter.
func NewExecutor(presenter ResultPresenter, opts ...ExecutorOption) *Executor {
	e := &Executor{presenter: presenter}
	for _, opt := range opts {
		opt(e)
	}
	if e.observer == nil {
		e.observer = NullObserver{}
	}
	if e.logger == nil {
		e.logger = logging.NewNopLogger()
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(TracerName)
	}
	return e
}

// ExecuteSteps runs steps one after another, presenting each result on out
// before starting the next step.
//
// Execution stops at the first failing step, or before a step when ctx is
// done. The returned error is then an apperrors.StepError naming that step.
//
// Parameters:
//   - ctx: The context for cancellation between steps.
//   - steps: The steps in execution order.
//   - out: The writer passed to the presenter.
//
// Returns:
//   - []StepResult: The results of the steps that ran, in order.
//   - error: The failure that stopped execution, or nil.
func (e *Executor) ExecuteSteps(ctx context.Context, steps []Step, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))

	for _, step := range steps {
		name := step.Name()
		if err := ctx.Err(); err != nil {
			return results, apperrors.StepError{Step: name, Cause: err}
		}

		res := e.runStep(ctx, name, step)
		results = append(results, res)
		e.observer.ObserveStep(name, res.Duration, res.Err)

		if res.Err != nil {
			e.logger.Error("step failed", res.Err, logging.String("step", name))
			return results, apperrors.StepError{Step: name, Cause: res.Err}
		}
		e.logger.Debug("step done",
			logging.String("step", name),
			logging.Duration("duration", res.Duration))
		e.presenter.PresentResult(res, out)
	}
	return results, nil
}

func (e *Executor) runStep(ctx context.Context, name string, step Step) StepResult {
	ctx, span := e.tracer.Start(ctx, "step "+name,
		trace.WithAttributes(attribute.String("snippets.step", name)))
	defer span.End()

	start := time.Now()
	line, err := step.Run(ctx)
	res := StepResult{Name: name, Line: line, Duration: time.Since(start), Err: err}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		res.Line = ""
	} else {
		span.SetAttributes(attribute.String("snippets.line", line))
	}
	return res
}
