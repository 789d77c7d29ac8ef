// Package cpp - initial-temperature calibration for the SA kernel.
//
// The calibration bisects the temperature in [1, 2000] until a single SA
// batch on a fresh greedy construction accepts close to half of its
// steps: too many acceptances halve toward the lower bound, too few
// toward the upper bound.
package cpp

import "math"

// Calibration constants (bisection on the acceptance ratio).
const (
	calibrationStart       = 1000.0
	calibrationLowerBound  = 1.0
	calibrationUpperBound  = 2000.0
	calibrationTolerance   = 0.05
	calibrationTargetRatio = 0.5

	// calibrationMaxRounds bounds the bisection: degenerate inputs (for
	// example all-zero weights) accept every step at any temperature and
	// would otherwise never reach the target band.
	calibrationMaxRounds = 64

	// calibrationCandidateListLength fixes alpha for the calibration
	// constructions.
	calibrationCandidateListLength = 2
)

// CalibrateTemperature runs the calibration bisection and returns the
// initial temperature to use. The process-wide RNG is reseeded from
// opts.Seed first.
//
// Errors: validation sentinels from types.go.
func CalibrateTemperature(weights [][]int, opts Options) (float64, error) {
	if _, err := validateAll(weights, opts); err != nil {
		return 0, err
	}

	Seed(opts.Seed)

	return calibrateTemperature(weights, opts), nil
}

// calibrateTemperature is the validated core. Each round constructs a
// fresh partition with GreedyAdding (alpha=2), runs exactly one SA batch
// at the trial temperature, and measures the acceptance ratio.
func calibrateTemperature(weights [][]int, opts Options) float64 {
	n := len(weights)

	var (
		temperature = calibrationStart
		lower       = calibrationLowerBound
		upper       = calibrationUpperBound
		round       int
	)
	for round = 0; round < calibrationMaxRounds; round++ {
		partition := GreedyAddingEmpty(weights, calibrationCandidateListLength)
		sorted, k := sortNonEmptyFirst(partition)

		batch := int(math.Round(opts.BatchSizeScaleFactor * float64(k) * float64(n)))
		if batch < 1 {
			batch = 1
		}

		st := newAnnealState(weights, sorted, k, opts.AllowSingletonMoves)

		var (
			transitions    int
			previousVertex int
			i              int
		)
		for i = 0; i < batch; i++ {
			accepted, _, moved := st.step(previousVertex, temperature)
			previousVertex = moved
			if accepted {
				transitions++
			}
		}

		ratio := float64(transitions) / float64(batch)
		switch {
		case ratio > calibrationTargetRatio+calibrationTolerance:
			upper = temperature
			temperature = (temperature + lower) / 2
		case ratio < calibrationTargetRatio-calibrationTolerance:
			lower = temperature
			temperature = (temperature + upper) / 2
		default:
			return temperature
		}
	}

	return temperature
}
