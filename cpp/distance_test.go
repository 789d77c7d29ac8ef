// Package cpp_test - partition metrics: Rand-error axioms, Variation of
// Information, and the upper-triangular distance matrix builder.
package cpp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliquepart/cpp"
)

func TestRandError_ZeroIffSemanticallyEqual(t *testing.T) {
	a := []int{0, 0, 1, 1}
	relabeled := []int{5, 5, 2, 2} // same relation, different clique ids

	assert.Zero(t, cpp.PartitionDistance(a, a, cpp.RandError))
	assert.Zero(t, cpp.PartitionDistance(a, relabeled, cpp.RandError))

	different := []int{0, 1, 1, 1}
	assert.Positive(t, cpp.PartitionDistance(a, different, cpp.RandError))
}

func TestRandError_SymmetricAndBounded(t *testing.T) {
	a := []int{0, 0, 1, 1, 2}
	b := []int{0, 1, 1, 2, 2}

	ab := cpp.PartitionDistance(a, b, cpp.RandError)
	ba := cpp.PartitionDistance(b, a, cpp.RandError)

	assert.Equal(t, ab, ba, "Rand error is symmetric")
	assert.GreaterOrEqual(t, ab, 0.0)
	assert.LessOrEqual(t, ab, 1.0)
}

func TestRandError_KnownSmallCase(t *testing.T) {
	// Pairs over 3 vertices: (0,1), (0,2), (1,2).
	// a joins all three; b keeps them apart: all 3 pairs disagree.
	a := []int{0, 0, 0}
	b := []int{0, 1, 2}
	assert.InDelta(t, 1.0, cpp.PartitionDistance(a, b, cpp.RandError), 1e-12)

	// a joins (0,1),(0,2),(1,2); c joins (0,1) only ⇒ 2 of 3 pairs disagree.
	c := []int{0, 0, 1}
	assert.InDelta(t, 2.0/3.0, cpp.PartitionDistance(a, c, cpp.RandError), 1e-12)
}

func TestRandError_SingleVertexIsZero(t *testing.T) {
	assert.Zero(t, cpp.PartitionDistance([]int{0}, []int{3}, cpp.RandError))
}

func TestVariationOfInformation_IdenticalIsZero(t *testing.T) {
	a := []int{0, 0, 1, 1, 2}
	assert.InDelta(t, 0.0, cpp.PartitionDistance(a, a, cpp.VariationOfInformation), 1e-12)

	relabeled := []int{7, 7, 4, 4, 9}
	assert.InDelta(t, 0.0, cpp.PartitionDistance(a, relabeled, cpp.VariationOfInformation), 1e-12)
}

func TestVariationOfInformation_KnownTwoBlockCase(t *testing.T) {
	// X = {0,1},{2,3}; Y = all four together.
	// H(X)=ln 2, H(Y)=0, H(X,Y)=ln 2 ⇒ VI = 2·ln2 − ln2 − 0 = ln 2.
	x := []int{0, 0, 1, 1}
	y := []int{0, 0, 0, 0}

	assert.InDelta(t, math.Log(2), cpp.PartitionDistance(x, y, cpp.VariationOfInformation), 1e-12)
}

func TestVariationOfInformation_SymmetricAndNonNegative(t *testing.T) {
	a := []int{0, 1, 0, 2, 1}
	b := []int{1, 1, 0, 0, 2}

	ab := cpp.PartitionDistance(a, b, cpp.VariationOfInformation)
	ba := cpp.PartitionDistance(b, a, cpp.VariationOfInformation)

	assert.InDelta(t, ab, ba, 1e-12)
	assert.GreaterOrEqual(t, ab, 0.0)
}

func TestUpperDistanceMatrix_FillsStrictUpperTriangle(t *testing.T) {
	vectors := [][]int{
		{0, 0, 1},
		{0, 1, 1},
		{0, 0, 1},
	}

	d := cpp.UpperDistanceMatrix(vectors, cpp.RandError)

	assert.Len(t, d, 3)

	var i, j int
	for i = 0; i < 3; i++ {
		assert.Zero(t, d[i][i], "diagonal stays zero")
		for j = 0; j < i; j++ {
			assert.Zero(t, d[i][j], "lower triangle stays zero; callers mirror it")
		}
	}

	assert.Positive(t, d[0][1])
	assert.Zero(t, d[0][2], "identical vectors at zero distance")
	assert.Equal(t, d[0][1], d[1][2], "vector 2 repeats vector 0")
}
