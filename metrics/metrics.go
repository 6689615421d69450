// Package metrics exposes prometheus collectors for maze generation and
// solving. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazeforge/synth"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
)

// Metrics groups the collectors registered by New.
type Metrics struct {
	generated prometheus.Counter
	repairs   *prometheus.CounterVec
	solves    *prometheus.CounterVec
	duration  prometheus.Histogram
}

// New registers the collectors on reg. Use prometheus.NewRegistry() in
// tests to avoid clashing with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		generated: f.NewCounter(prometheus.CounterOpts{
			Name: "mazeforge_mazes_generated_total",
			Help: "Mazes synthesized successfully",
		}),
		repairs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazeforge_repairs_total",
			Help: "Connectivity repairs that carved cells, by pipeline phase",
		}, []string{"phase"}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazeforge_solves_total",
			Help: "Path searches by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazeforge_generation_seconds",
			Help:    "Time to synthesize one maze",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}
}

// ObserveMaze records one finished maze and how long it took.
func (m *Metrics) ObserveMaze(mz *synth.Maze, took time.Duration) {
	if m == nil || mz == nil {
		return
	}
	m.generated.Inc()
	m.duration.Observe(took.Seconds())
	for _, phase := range mz.Stats.Repairs {
		m.repairs.WithLabelValues(phase).Inc()
	}
}

// ObserveSolve records one search result.
func (m *Metrics) ObserveSolve(found bool) {
	if m == nil {
		return
	}
	outcome := OutcomeUnreachable
	if found {
		outcome = OutcomeFound
	}
	m.solves.WithLabelValues(outcome).Inc()
}
