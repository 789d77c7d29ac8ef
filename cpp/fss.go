// Package cpp - Fixed-Set Search (FSS).
//
// FSS keeps a plain value-descending list of elite records. Each
// iteration picks a random base from the top-m and a random consensus
// subset of k records from the top-n, fixes the base's highest-consensus
// vertices (the current portion of the schedule), and rebuilds the rest
// with {greedy adding → greedy moving → SA}. Stagnation advances the
// portion schedule round-robin.
//
// Portion schedule: 1 − 2^{-i} for i = 1..⌊log₂(N/5)⌋ — each step halves
// the free vertex count until fewer than about ten remain free. Instances
// too small for the schedule run with a single all-free portion.
package cpp

import (
	"math"
	"sort"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/cliquepart/observability"
)

// FixedSetSearch runs the FSS strategy and returns the best partition
// found together with its improvement trace. The process-wide RNG is
// reseeded from opts.Seed; an unset initial temperature is calibrated.
//
// The wall-clock limit is checked at the top of every iteration; on
// expiry the current best is returned (never an error).
func FixedSetSearch(weights [][]int, opts Options) (Result, error) {
	n, err := validateAll(weights, opts)
	if err != nil {
		return Result{}, err
	}

	Seed(opts.Seed)

	var (
		start       = time.Now()
		temperature = resolveTemperature(weights, opts)
		graspBudget = opts.GRASPIterations
	)
	if graspBudget == 0 {
		graspBudget = DefaultFSSGraspIterations
	}

	portions := fixedSetSizePortions(n)
	portionIndex := 0
	portion := portions[portionIndex]

	capacity := opts.CandidatePoolSize
	if opts.BaseSelectionSize > capacity {
		capacity = opts.BaseSelectionSize
	}

	best, solutions := runGRASP(weights, graspBudget, temperature, opts)
	trace := []TracePoint{{Iteration: graspBudget, Elapsed: time.Since(start), Value: best.Value}}
	observability.BestValueGauge.Set(float64(best.Value))

	var (
		stagnation int
		resort     = true // population changed since the last sort
		iteration  int
	)
	for iteration = graspBudget; iteration < opts.Iterations; iteration++ {
		if opts.TimeLimit > 0 && time.Since(start) >= opts.TimeLimit {
			break
		}

		if resort {
			sort.SliceStable(solutions, func(i, j int) bool {
				return solutions[j].Less(solutions[i])
			})
		}

		count := len(solutions)
		baseRank := minInt(opts.BaseSelectionSize, count)
		subsetRank := minInt(opts.CandidatePoolSize, count)
		subsetSize := minInt(opts.FixedSetSolutions, count)

		// Random consensus subset: shuffle a copy of the top-n, keep k.
		subset := append([]Solution(nil), solutions[:subsetRank]...)
		shuffleSolutions(subset)
		subset = subset[:subsetSize]

		base := solutions[randBelow(baseRank)].Partition

		partial := findFixedPartialSolution(base, subset, portion)

		partition := GreedyAdding(weights, partial, opts.CandidateListLength)
		partition = GreedyMoving(weights, partition)
		partition = Anneal(weights, partition, temperature, opts)

		candidate := NewSolution(partition, weights)

		unique := !containsEqualSolution(solutions, candidate)
		worstValue := solutions[len(solutions)-1].Value
		full := len(solutions) >= capacity

		switch {
		case unique && !full:
			solutions = append(solutions, candidate)
			resort = true
		case unique && candidate.Value > worstValue:
			solutions[len(solutions)-1] = candidate
			resort = true
		default:
			resort = false
		}

		if candidate.Value > best.Value {
			klog.V(1).Infof("cpp: new best: %d    iteration: %d    time: %s",
				candidate.Value, iteration, time.Since(start).Round(time.Millisecond))
			best = candidate
			trace = append(trace, TracePoint{Iteration: iteration, Elapsed: time.Since(start), Value: best.Value})
			observability.BestValueGauge.Set(float64(best.Value))
			stagnation = 0
		} else {
			stagnation++
		}

		if stagnation >= opts.MaxStagnationPerPortion {
			portionIndex = (portionIndex + 1) % len(portions)
			portion = portions[portionIndex]
			stagnation = 0
		}
	}

	return Result{Partition: best.Partition, Value: best.Value, Trace: trace}, nil
}

// fixedSetSizePortions builds the portion schedule 1 − 2^{-i} for
// i = 1..⌊log₂(N/5)⌋. The bound keeps the number of free vertices at
// least five and below ten at the tightest portion. Instances with fewer than ten
// vertices get a single all-free portion so the loop stays total.
func fixedSetSizePortions(n int) []float64 {
	maxPortion := int(math.Floor(math.Log2(float64(n) / 5.0)))
	if maxPortion < 1 {
		return []float64{0}
	}

	portions := make([]float64, 0, maxPortion)

	var i int
	for i = 1; i <= maxPortion; i++ {
		portions = append(portions, 1.0-math.Pow(2.0, -float64(i)))
	}

	return portions
}

// findFixedPartialSolution scores every vertex of the base partition by
// consensus with the subset — for each subset record, how many of the
// vertex's base clique mates share its clique there — normalized by the
// base clique size. The top portion·N vertices are kept; the emitted
// partition mirrors the base with all other vertices removed (holes to be
// refilled by GreedyAdding).
func findFixedPartialSolution(base Partition, subset []Solution, portion float64) Partition {
	type scoredVertex struct {
		vertex int
		score  float64
	}

	scores := make([]scoredVertex, 0, base.Vertices())

	var (
		clique      []int
		vertex, v   int
		record      Solution
		recordIndex int
		same        int
		score       float64
	)
	for _, clique = range base {
		for _, vertex = range clique {
			score = 0
			for _, record = range subset {
				recordIndex = record.CliqueIndexForVertex[vertex]
				same = 0
				for _, v = range clique {
					if record.CliqueIndexForVertex[v] == recordIndex {
						same++
					}
				}
				score += float64(same)
			}
			score /= float64(len(clique))
			scores = append(scores, scoredVertex{vertex: vertex, score: score})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	kept := int(math.Round(portion * float64(len(scores))))
	keep := make(map[int]bool, kept)

	var i int
	for i = 0; i < kept; i++ {
		keep[scores[i].vertex] = true
	}

	partial := make(Partition, len(base))
	for i, clique = range base {
		for _, vertex = range clique {
			if keep[vertex] {
				partial[i] = append(partial[i], vertex)
			}
		}
	}

	return partial
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
