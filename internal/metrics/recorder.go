// Package metrics records per-step counters and durations in a private
// Prometheus registry and exports them in the text exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes every metric name.
const Namespace = "snippets"

// Step outcome label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Recorder owns a private registry holding the step metrics and the Go
// runtime collector.
type Recorder struct {
	registry  *prometheus.Registry
	steps     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Number of demo steps executed, by step and status.",
		}, []string{"step", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "step_duration_seconds",
			Help:      "Wall-clock duration of demo steps.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"step"}),
	}
	r.registry.MustRegister(r.steps, r.durations, collectors.NewGoCollector())
	return r
}

// ObserveStep records one execution of a step.
func (r *Recorder) ObserveStep(step string, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	r.steps.WithLabelValues(step, status).Inc()
	r.durations.WithLabelValues(step).Observe(d.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text format understood by
// the node_exporter textfile collector. The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Gatherer())
}
