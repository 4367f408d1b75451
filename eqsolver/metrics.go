// SPDX-License-Identifier: MIT

package eqsolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "eqsolve"
	metricsSubsystem = "solver"
)

// Metrics holds the Prometheus collectors fed by Solve.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// solves counts finished Solve calls.
	// Labels: outcome (solved, no_solutions, infinite_solutions, memory_error, overflow)
	solves *prometheus.CounterVec

	// duration measures Solve wall time.
	// Labels: outcome
	duration *prometheus.HistogramVec

	// pivotSwaps counts row exchanges made while searching for a pivot.
	pivotSwaps prometheus.Counter

	// rankDeficient counts pivot columns skipped because no nonzero entry was found.
	rankDeficient prometheus.Counter
}

// NewMetrics creates the solver collectors and registers them with reg.
// A nil reg yields working but unregistered collectors. Registering twice on
// the same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solves_total",
			Help:      "Total Solve calls by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solve_duration_seconds",
			Help:      "Solve wall time in seconds by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"outcome"}),
		pivotSwaps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "pivot_swaps_total",
			Help:      "Total row exchanges made during pivot search.",
		}),
		rankDeficient: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "rank_deficient_columns_total",
			Help:      "Total pivot columns without a nonzero entry.",
		}),
	}
}

func (m *Metrics) observeSolve(outcome Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := outcome.String()
	m.solves.WithLabelValues(label).Inc()
	m.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}

func (m *Metrics) addPivotSwaps(n int) {
	if m == nil || n == 0 {
		return
	}
	m.pivotSwaps.Add(float64(n))
}

func (m *Metrics) addRankDeficient(n int) {
	if m == nil || n == 0 {
		return
	}
	m.rankDeficient.Add(float64(n))
}
