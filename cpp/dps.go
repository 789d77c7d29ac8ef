// Package cpp - Diverse Pool Search (DPS).
//
// DPS seeds a bounded diverse pool with GRASP local optima, then
// repeatedly polishes each pool member with the SA kernel and, whenever
// the polish beats the pool's worst, tries to push the result further
// with a scripted re-improvement schedule of progressively cooler SA runs
// before offering it to the pool.
package cpp

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/cliquepart/observability"
)

// DPS pool constants (reference parameterization).
const (
	// dpsSeedFilterThreshold prunes near-duplicate GRASP seeds before the
	// pool is built.
	dpsSeedFilterThreshold = 0.01

	// dpsPoolSimilarityThreshold is the pool's Rand-error threshold.
	dpsPoolSimilarityThreshold = 0.02
)

// reimprovementExponents expands the scripted cooling exponents of the
// re-improvement schedule: 2·factor copies of 48, then factor copies of
// 36, then factor copies of 24.
func reimprovementExponents(factor int) []float64 {
	schedule := make([]float64, 0, 4*factor)

	var i int
	for i = 0; i < 2*factor; i++ {
		schedule = append(schedule, 48)
	}
	for i = 0; i < factor; i++ {
		schedule = append(schedule, 36)
	}
	for i = 0; i < factor; i++ {
		schedule = append(schedule, 24)
	}

	return schedule
}

// DiversePoolSearch runs the DPS strategy and returns the best partition
// found together with its improvement trace. The process-wide RNG is
// reseeded from opts.Seed; an unset initial temperature is calibrated.
//
// The wall-clock limit is checked before every pool-member polish; on
// expiry the current best is returned (never an error).
func DiversePoolSearch(weights [][]int, opts Options) (Result, error) {
	if _, err := validateAll(weights, opts); err != nil {
		return Result{}, err
	}

	Seed(opts.Seed)

	var (
		start       = time.Now()
		temperature = resolveTemperature(weights, opts)
		graspBudget = opts.GRASPIterations
	)
	if graspBudget == 0 {
		graspBudget = 3 * opts.PoolSize
	}

	_, population := runGRASP(weights, graspBudget, temperature, opts)
	population = filterSimilarSolutions(population, dpsSeedFilterThreshold)

	pool := NewSolutionManager(dpsPoolSimilarityThreshold, opts.PoolSize)
	pool.Initialize(population)

	trace := []TracePoint{{Iteration: 0, Elapsed: time.Since(start), Value: pool.Best().Value}}
	observability.BestValueGauge.Set(float64(pool.Best().Value))
	observability.PoolSizeGauge.Set(float64(pool.Count()))

	var (
		iteration int
		slot      int
	)
search:
	for iteration = 0; iteration < opts.Iterations; iteration++ {
		for slot = 0; slot < opts.PoolSize && slot < pool.Count(); slot++ {
			if opts.TimeLimit > 0 && time.Since(start) >= opts.TimeLimit {
				break search
			}

			polished := Anneal(weights, pool.Solution(slot).Partition, temperature, opts)
			candidate := NewSolution(polished, weights)

			if candidate.Value <= pool.Worst().Value {
				continue
			}
			// Also covers the no-op polish that returned the slot's own
			// solution: a similar record with a higher (or equal-ranked)
			// value is already stored.
			if pool.ExistsSimilarSolutionWithHigherValue(candidate) {
				continue
			}

			candidate = tryImproveSolution(candidate, weights, temperature, opts)

			inserted, newBest := pool.TryAddSolution(candidate)
			if inserted && newBest {
				klog.V(1).Infof("cpp: new best: %d    time: %s", candidate.Value, time.Since(start).Round(time.Millisecond))
				trace = append(trace, TracePoint{Iteration: iteration, Elapsed: time.Since(start), Value: candidate.Value})
			}
			if inserted {
				observability.BestValueGauge.Set(float64(pool.Best().Value))
				observability.PoolSizeGauge.Set(float64(pool.Count()))
			}
		}
	}

	if opts.ResultLog != "" {
		logPoolValues(opts.ResultLog, pool.All())
	}

	best := pool.Best()

	return Result{Partition: best.Partition, Value: best.Value, Trace: trace}, nil
}

// tryImproveSolution repeatedly re-anneals the record at scripted cooler
// temperatures T·θ^m; the first strict improvement restarts the schedule
// from the improved record, and a full pass without improvement ends the
// loop.
func tryImproveSolution(record Solution, weights [][]int, temperature float64, opts Options) Solution {
	improved := record
	schedule := reimprovementExponents(opts.ImprovementFactor)

	improving := true
	for improving {
		improving = false

		var exponent float64
		for _, exponent = range schedule {
			cooler := temperature * math.Pow(opts.CooldownFactor, exponent)
			partition := Anneal(weights, improved.Partition, cooler, opts)

			if partition.Value(weights) > improved.Value {
				improved = NewSolution(partition, weights)
				improving = true

				break
			}
		}
	}

	return improved
}

// filterSimilarSolutions drops, from every near-duplicate pair (Rand
// error below the threshold), the lower-valued record. Seed pre-filtering
// for the pool.
func filterSimilarSolutions(population []Solution, threshold float64) []Solution {
	labelVectors := make([][]int, len(population))

	var i, j int
	for i = range population {
		labelVectors[i] = population[i].CliqueIndexForVertex
	}

	distances := UpperDistanceMatrix(labelVectors, RandError)
	for i = range distances {
		for j = i + 1; j < len(distances); j++ {
			distances[j][i] = distances[i][j]
		}
	}

	filtered := make([]Solution, 0, len(population))

	var keep bool
	for i = range population {
		keep = true
		for j = range population {
			if i != j && distances[i][j] < threshold && population[i].Value < population[j].Value {
				keep = false

				break
			}
		}
		if keep {
			filtered = append(filtered, population[i])
		}
	}

	return filtered
}

// logPoolValues writes the final pool values one per line, in pool order.
// Failures are diagnostic only; the search result is already in hand.
func logPoolValues(path string, solutions []Solution) {
	var b strings.Builder

	var s Solution
	for _, s = range solutions {
		fmt.Fprintf(&b, "%d\n", s.Value)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		klog.Errorf("cpp: unable to write result log %q: %v", path, err)
	}
}
