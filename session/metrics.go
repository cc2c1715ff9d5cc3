package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes search progress to Prometheus.
type Metrics struct {
	Steps         prometheus.Counter
	Searches      *prometheus.CounterVec
	VisitedCells  prometheus.Gauge
	Regenerations prometheus.Counter
}

// NewMetrics registers the gridviz collectors on reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Steps: f.NewCounter(prometheus.CounterOpts{
			Namespace: "gridviz",
			Name:      "steps_total",
			Help:      "Search steps executed.",
		}),
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridviz",
			Name:      "searches_total",
			Help:      "Finished searches by outcome.",
		}, []string{"outcome"}),
		VisitedCells: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "gridviz",
			Name:      "visited_cells",
			Help:      "Cells visited by the current search.",
		}),
		Regenerations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "gridviz",
			Name:      "regenerations_total",
			Help:      "Grid layouts generated.",
		}),
	}
}
