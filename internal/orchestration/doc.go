// Package orchestration runs the demo steps in order, hands each result to
// a presenter and records metrics and trace spans for every step. It
// decouples the steps from presentation via the ResultPresenter interface.
package orchestration
