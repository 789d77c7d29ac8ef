// Package cpp - partition distances over label vectors.
//
// Two metrics form a closed set (see Metric in types.go): the Rand error
// (pair-counting disagreement rate, range [0,1], zero iff semantically
// equal) and the Variation of Information (information-theoretic,
// non-negative). Both operate on label vectors; any labeling inducing the
// same equivalence relation yields the same distances.
//
// Contracts:
//   - Both label vectors have the same length N.
//   - Labels are arbitrary non-negative clique ids.
//
// Complexity: Rand error O(N²) pair scan; VI O(N) with hash-counted
// marginals and joint.
package cpp

import "math"

// PartitionDistance dispatches on metric. Unknown metrics fall back to the
// Rand error (the closed set has exactly two members).
func PartitionDistance(a, b []int, metric Metric) float64 {
	if metric == VariationOfInformation {
		return variationOfInformation(a, b)
	}

	return randError(a, b)
}

// randError returns the fraction of vertex pairs on which a and b
// disagree: a pair counts as disagreement when it is same-clique in one
// labeling but split in the other. Zero pairs (N < 2) yield distance 0.
func randError(a, b []int) float64 {
	n := len(a)
	if n < 2 {
		return 0
	}

	var (
		disagreements int64
		pairs         int64
		i, j          int
		sameA, sameB  bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sameA = a[i] == a[j]
			sameB = b[i] == b[j]
			if sameA != sameB {
				disagreements++
			}
			pairs++
		}
	}

	return float64(disagreements) / float64(pairs)
}

// variationOfInformation returns H(X|Y) + H(Y|X) for the clusterings X
// (labels a) and Y (labels b), computed as 2·H(X,Y) − H(X) − H(Y) over the
// empirical joint distribution. Natural logarithm.
func variationOfInformation(a, b []int) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	var (
		countA     = make(map[int]int, 16)
		countB     = make(map[int]int, 16)
		countJoint = make(map[[2]int]int, 16)
		i          int
	)
	for i = 0; i < n; i++ {
		countA[a[i]]++
		countB[b[i]]++
		countJoint[[2]int{a[i], b[i]}]++
	}

	var (
		total           = float64(n)
		entropyA        float64
		entropyB        float64
		entropyJoint    float64
		p               float64
		c               int
	)
	for _, c = range countA {
		p = float64(c) / total
		entropyA -= p * math.Log(p)
	}
	for _, c = range countB {
		p = float64(c) / total
		entropyB -= p * math.Log(p)
	}
	for _, c = range countJoint {
		p = float64(c) / total
		entropyJoint -= p * math.Log(p)
	}

	vi := 2*entropyJoint - entropyA - entropyB
	if vi < 0 {
		// Clamp the tiny negative residue of floating-point cancellation.
		vi = 0
	}

	return vi
}

// UpperDistanceMatrix fills the strict upper triangle of the K×K pairwise
// distance matrix over the given label vectors: D[i][j] for i < j, with
// D[i][i] = 0 and the lower triangle left at zero. Callers needing a
// symmetric matrix mirror D[j][i] = D[i][j] themselves.
//
// Complexity: O(K²) metric evaluations.
func UpperDistanceMatrix(labelVectors [][]int, metric Metric) [][]float64 {
	k := len(labelVectors)
	distances := make([][]float64, k)

	var i, j int
	for i = 0; i < k; i++ {
		distances[i] = make([]float64, k)
	}
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			distances[i][j] = PartitionDistance(labelVectors[i], labelVectors[j], metric)
		}
	}

	return distances
}
