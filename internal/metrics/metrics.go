//Package metrics provides Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GuideFetches tracks guide fetch attempts against external providers.
	GuideFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridline",
			Subsystem: "guide",
			Name:      "fetches_total",
			Help:      "Number of fetch attempts against external guide providers.",
		},
		[]string{"provider", "result"},
	)
	// SyntheticFallbacks tracks how often a channel fell back to generated data.
	SyntheticFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridline",
			Subsystem: "guide",
			Name:      "synthetic_total",
			Help:      "Number of channels served synthetic schedules.",
		},
		[]string{"reason"},
	)
	// ProgramsReturned tracks the total number of programs attached to responses.
	ProgramsReturned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridline",
			Subsystem: "guide",
			Name:      "programs_total",
			Help:      "Number of programs returned to callers.",
		},
		[]string{"provider"},
	)
	// ExposedChannels tracks the number of channels in the last served lineup.
	ExposedChannels = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gridline",
			Subsystem: "channels",
			Name:      "total",
			Help:      "Number of exposed channels.",
		},
	)
)

// nolint
func init() {
	prometheus.MustRegister(GuideFetches)
	prometheus.MustRegister(SyntheticFallbacks)
	prometheus.MustRegister(ProgramsReturned)
	prometheus.MustRegister(ExposedChannels)
}
