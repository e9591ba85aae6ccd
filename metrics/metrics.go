// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for solve runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the solve sweep.
// All methods are safe on a nil receiver.
type Metrics struct {
	// Wall time of a full sweep
	SweepDuration prometheus.Histogram

	// Decision cells written, by household
	Cells *prometheus.CounterVec

	// Cells where a parent moves, by household and parent ("w" or "m")
	Moves *prometheus.CounterVec
}

// New registers the sweep metrics on reg. Passing a fresh
// prometheus.NewRegistry() keeps repeated constructions (tests, CLI runs) apart.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "relocate_sweep_duration_seconds",
			Help:    "Duration of a full decision sweep over the state space",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),

		Cells: f.NewCounterVec(prometheus.CounterOpts{
			Name: "relocate_sweep_cells_total",
			Help: "Decision cells evaluated by household configuration",
		}, []string{"household"}),

		Moves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "relocate_sweep_moves_total",
			Help: "Decision cells in which a parent migrates, by household and parent",
		}, []string{"household", "parent"}),
	}
}

// ObserveSweep records the duration of one sweep.
func (m *Metrics) ObserveSweep(d time.Duration) {
	if m != nil {
		m.SweepDuration.Observe(d.Seconds())
	}
}

// AddCells records n evaluated cells for household.
func (m *Metrics) AddCells(household string, n int) {
	if m != nil {
		m.Cells.WithLabelValues(household).Add(float64(n))
	}
}

// AddMoves records n moving cells for a household/parent pair.
func (m *Metrics) AddMoves(household, parent string, n int) {
	if m != nil && n > 0 {
		m.Moves.WithLabelValues(household, parent).Add(float64(n))
	}
}
