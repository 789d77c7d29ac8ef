// Package observability exposes prometheus metrics for the search engine.
//
// The metrics are registered on the default registry at import time via
// promauto and updated by the solver at batch/iteration granularity (never
// inside the SA hot loop). The CLI optionally serves them on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SABatchesTotal counts completed simulated-annealing batches.
	SABatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliquepart_sa_batches_total",
		Help: "Total number of completed simulated annealing batches",
	})

	// SAStepsTotal counts attempted simulated-annealing steps.
	SAStepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliquepart_sa_steps_total",
		Help: "Total number of attempted simulated annealing steps",
	})

	// SATransitionsTotal counts accepted simulated-annealing transitions.
	SATransitionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliquepart_sa_transitions_total",
		Help: "Total number of accepted simulated annealing transitions",
	})

	// GRASPIterationsTotal counts completed GRASP construction rounds.
	GRASPIterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliquepart_grasp_iterations_total",
		Help: "Total number of completed GRASP construction rounds",
	})

	// PoolSizeGauge tracks the current diverse-pool population.
	PoolSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cliquepart_pool_size",
		Help: "Current number of solutions in the diverse pool",
	})

	// BestValueGauge tracks the best partition value found so far.
	BestValueGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cliquepart_best_value",
		Help: "Best partition value found so far",
	})
)
