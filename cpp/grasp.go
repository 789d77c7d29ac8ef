// Package cpp - the GRASP constructor: repeated randomized construction
// plus local search, producing a population of diverse local optima.
package cpp

import (
	"github.com/katalvlaran/cliquepart/observability"
)

// GRASP runs `iterations` rounds of {greedy adding → greedy moving → SA}
// and returns the best record plus every semantically unique record, in
// discovery order. The process-wide RNG is reseeded from opts.Seed and an
// unset (<= 0) initial temperature is calibrated first.
//
// Errors: validation sentinels from types.go; iterations < 1 is
// ErrBadOptions (an empty population is nothing to work with).
func GRASP(weights [][]int, iterations int, opts Options) (Solution, []Solution, error) {
	if _, err := validateAll(weights, opts); err != nil {
		return Solution{}, nil, err
	}
	if iterations < 1 {
		return Solution{}, nil, ErrBadOptions
	}

	Seed(opts.Seed)
	temperature := resolveTemperature(weights, opts)

	best, population := runGRASP(weights, iterations, temperature, opts)

	return best, population, nil
}

// runGRASP is the validated core shared with the outer strategies.
func runGRASP(weights [][]int, iterations int, temperature float64, opts Options) (Solution, []Solution) {
	population := make([]Solution, 0, iterations)

	var (
		i         int
		partition Partition
		candidate Solution
	)
	for i = 0; i < iterations; i++ {
		partition = GreedyAddingEmpty(weights, opts.CandidateListLength)
		partition = GreedyMoving(weights, partition)
		partition = Anneal(weights, partition, temperature, opts)

		candidate = NewSolution(partition, weights)
		if !containsEqualSolution(population, candidate) {
			population = append(population, candidate)
		}

		observability.GRASPIterationsTotal.Inc()
	}

	best := population[0]

	var s Solution
	for _, s = range population[1:] {
		if best.Less(s) {
			best = s
		}
	}

	return best, population
}

// containsEqualSolution reports whether population already holds a record
// semantically equal to candidate.
func containsEqualSolution(population []Solution, candidate Solution) bool {
	var s Solution
	for _, s = range population {
		if s.Equal(candidate) {
			return true
		}
	}

	return false
}

// resolveTemperature returns the configured initial temperature, running
// the calibration bisection when it is unset.
func resolveTemperature(weights [][]int, opts Options) float64 {
	if opts.InitialTemperature > 0 {
		return opts.InitialTemperature
	}

	return calibrateTemperature(weights, opts)
}
