// Package metrics provides Prometheus metrics for trendpulse content
// operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trendpulse"

// Recorder records the outcome of one content operation. The mode label is
// one of live, demo or fallback.
type Recorder interface {
	RecordOperation(operation, mode string, duration time.Duration)
}

// Prometheus records operations as Prometheus metrics.
type Prometheus struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewPrometheus registers the operation metrics with reg. A nil reg uses the
// default registerer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		// operations counts facade calls by outcome.
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of content operations by result mode",
			},
			[]string{"operation", "mode"},
		),
		// duration measures facade calls including any provider round trip.
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of content operations in seconds",
				Buckets:   []float64{0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
	}
}

// RecordOperation implements Recorder.
func (p *Prometheus) RecordOperation(operation, mode string, duration time.Duration) {
	p.operations.WithLabelValues(operation, mode).Inc()
	p.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Nop discards everything.
type Nop struct{}

// RecordOperation implements Recorder.
func (Nop) RecordOperation(string, string, time.Duration) {}
