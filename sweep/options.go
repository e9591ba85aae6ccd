// SPDX-License-Identifier: MIT
// Package: relocate/sweep
//
// options.go — functional options for Solve.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless values (programmer error).
//   • Solve itself never panics; it returns sentinel errors.

package sweep

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/relocate/metrics"
)

// Option customizes a Solve call by mutating its config.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// newConfig resolves defaults, then applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of rows evaluated concurrently.
// n == 1 gives a serial sweep. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sweep: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics attaches a metrics sink. A nil sink disables recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}
