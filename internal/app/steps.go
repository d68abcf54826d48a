package app

import (
	"context"

	"github.com/agbru/snippets/internal/conditional"
	"github.com/agbru/snippets/internal/fibonacci"
	"github.com/agbru/snippets/internal/geometry"
	"github.com/agbru/snippets/internal/orchestration"
	"github.com/agbru/snippets/internal/text"
)

// Step names, in execution order.
const (
	StepFib         = "fib"
	StepConditional = "conditional"
	StepFirstWord   = "first-word"
	StepArea        = "area"
)

// Steps returns the four demo steps bound to the current configuration.
// The steps share no state and never fail.
func (a *Application) Steps() []orchestration.Step {
	cfg := a.Config
	return []orchestration.Step{
		orchestration.NewStep(StepFib, func(context.Context) (string, error) {
			return fibonacci.Line(cfg.N, fibonacci.Fib(cfg.N)), nil
		}),
		orchestration.NewStep(StepConditional, func(context.Context) (string, error) {
			return conditional.Line(conditional.Select(cfg.Condition, cfg.Condition2)), nil
		}),
		orchestration.NewStep(StepFirstWord, func(context.Context) (string, error) {
			return text.FirstWord(cfg.Text), nil
		}),
		orchestration.NewStep(StepArea, func(context.Context) (string, error) {
			rect := geometry.Rectangle{Width: cfg.Width, Height: cfg.Height}
			return geometry.Line(rect.Area()), nil
		}),
	}
}
