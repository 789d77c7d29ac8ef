// Package cpp - validation utilities shared by the strategy entry points.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (factors, list lengths, budgets).
//  2. Validate weight matrices (shape, diagonal, symmetry).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go.
//   - Validation happens once, at the strategy entry points (GRASP, DPS,
//     FSS, CalibrateTemperature); inner components assume valid inputs.
package cpp

// validateAll verifies Options and the weight matrix. It returns n (the
// vertex count) on success.
//
// Contract:
//   - weights must be square and symmetric with zero diagonal, n >= 1.
//
// Complexity: O(n²) time, O(1) space.
func validateAll(weights [][]int, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	if err = validateOptions(opts); err != nil {
		return 0, err
	}

	n, err = validateWeights(weights)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without touching
// the problem.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.BatchSizeScaleFactor <= 0 {
		return ErrBadOptions
	}
	if opts.CooldownFactor <= 0 || opts.CooldownFactor >= 1 {
		return ErrBadOptions
	}
	if opts.MinimalTransitionRatio < 0 || opts.MinimalTransitionRatio >= 1 {
		return ErrBadOptions
	}
	if opts.CandidateListLength < 1 {
		return ErrBadOptions
	}
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	if opts.Iterations < 0 || opts.GRASPIterations < 0 {
		return ErrBadOptions
	}
	if opts.PoolSize < 1 || opts.ImprovementFactor < 0 {
		return ErrBadOptions
	}
	if opts.BaseSelectionSize < 1 || opts.CandidatePoolSize < 1 || opts.FixedSetSolutions < 1 {
		return ErrBadOptions
	}
	if opts.MaxStagnationPerPortion < 1 {
		return ErrBadOptions
	}

	return nil
}

// validateWeights checks shape and symmetry of the weight matrix and
// returns its order.
//
// Complexity: O(n²).
func validateWeights(weights [][]int) (int, error) {
	n := len(weights)
	if n == 0 {
		return 0, ErrEmptyProblem
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return 0, ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		if weights[i][i] != 0 {
			return 0, ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			if weights[i][j] != weights[j][i] {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
