// Package cpp - process-wide RNG shared by every randomized component.
//
// This file centralizes deterministic random generation for the whole
// solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical search trajectories across
//     platforms (the generator and its output discipline are fixed).
//   - Encapsulation: a single process-wide stream; no time-based sources
//     hidden anywhere.
//   - Performance: O(1) draws, O(n) shuffles, no allocations.
//
// Concurrency:
//   - The generator is process-wide mutable state accessed only from the
//     single search thread (the solver is strictly single-threaded); no
//     locking is provided or required.
package cpp

import "math/bits"

// rngState is the 128-bit xoshiro128+ state. It must never be all zero.
// The default value matches the reference generator's fixed seed.
var rngState = [4]uint32{2, 1, 1, 1}

// defaultRNGState restores the fixed default stream (the seed==0 policy).
var defaultRNGState = [4]uint32{2, 1, 1, 1}

// xoshiro128p advances the state and returns the next 31-bit output.
// The low bit of the raw sum is discarded, matching the reference output
// discipline; every consumer below builds on this exact stream.
//
// Complexity: O(1).
func xoshiro128p() uint32 {
	result := rngState[0] + rngState[3]
	t := rngState[1] << 9

	rngState[2] ^= rngState[0]
	rngState[3] ^= rngState[1]
	rngState[1] ^= rngState[2]
	rngState[0] ^= rngState[3]

	rngState[2] ^= t
	rngState[3] = bits.RotateLeft32(rngState[3], 11)

	return result >> 1
}

// randBelow returns a uniform-ish integer in [0, maximum).
// Contract: maximum >= 1 (callers guarantee non-empty ranges).
//
// Complexity: O(1).
func randBelow(maximum int) int {
	return int(xoshiro128p() % uint32(maximum))
}

// randUnitFloat returns a float in [0,1) drawn from a single generator
// output: the 31-bit value is divided by 2^31, so acceptance decisions
// reproduce bit-for-bit under a fixed seed.
//
// Complexity: O(1).
func randUnitFloat() float64 {
	return float64(xoshiro128p()) / 2147483648.0
}

// splitmix64 is the canonical SplitMix64 finalizer (Vigna 2014), used to
// expand a single user seed into the four state words with strong bit
// diffusion.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// Seed reseeds the process-wide generator. Policy: seed==0 restores the
// fixed default state; any other value is expanded via SplitMix64 into a
// non-zero 128-bit state. Reseeding mid-run is allowed but pointless;
// strategies call Seed once up front from Options.Seed.
//
// Complexity: O(1).
func Seed(seed int64) {
	if seed == 0 {
		rngState = defaultRNGState

		return
	}

	var (
		x uint64 // SplitMix64 stream position
		i int    // state word index
	)
	x = uint64(seed)
	for i = 0; i < 4; i++ {
		x = splitmix64(x)
		rngState[i] = uint32(x)
	}

	// xoshiro requires a non-zero state; SplitMix64 cannot emit four zero
	// words from a non-zero seed, but keep the invariant explicit.
	if rngState == [4]uint32{} {
		rngState = defaultRNGState
	}
}

// shuffleSolutions performs an in-place Fisher–Yates shuffle driven by the
// process-wide stream.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleSolutions(s []Solution) {
	var (
		i int
		j int
	)
	for i = len(s) - 1; i > 0; i-- {
		j = randBelow(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
