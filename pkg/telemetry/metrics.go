// Package telemetry registers the Prometheus metrics the analyzer and
// Monte Carlo driver report against.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisRunsTotal counts completed analysis runs by outcome.
	AnalysisRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_runs_total",
		Help: "Total fault tree analysis runs by outcome",
	}, []string{"outcome"})

	// AnalysisDuration tracks wall-clock time of one Analyze call.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Analysis duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	})

	// MCSGeneratedTotal counts candidate cut sets produced before
	// minimization, across all runs.
	MCSGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcs_generated_total",
		Help: "Total candidate cut sets generated before minimization",
	})

	// MCSPrunedByOrderTotal counts supersets abandoned for exceeding the
	// configured order limit.
	MCSPrunedByOrderTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcs_pruned_by_order_total",
		Help: "Total supersets pruned for exceeding the order limit",
	})

	// MonteCarloSimulationsTotal counts individual MC iterations run.
	MonteCarloSimulationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "montecarlo_simulations_total",
		Help: "Total Monte Carlo iterations run",
	})

	// MonteCarloDuration tracks wall-clock time of one Simulate call.
	MonteCarloDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "montecarlo_duration_seconds",
		Help:    "Monte Carlo run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
	})
)
