// Package cpp_test - solution records: semantic equality axioms and
// ordering.
package cpp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cliquepart/cpp"
)

func TestSolution_EqualIgnoresCliqueOrderAndPadding(t *testing.T) {
	w := triangleWeights()

	a := cpp.NewSolution(cpp.Partition{{0, 1}, {2}, nil}, w)
	b := cpp.NewSolution(cpp.Partition{{2}, nil, {1, 0}}, w)

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b), "clique order and padding are irrelevant")
	assert.True(t, b.Equal(a), "symmetric")
}

func TestSolution_EqualDistinguishesRelations(t *testing.T) {
	w := triangleWeights()

	split := cpp.NewSolution(cpp.Partition{{0, 1}, {2}}, w)
	grand := cpp.NewSolution(cpp.Partition{{0, 1, 2}}, w)
	other := cpp.NewSolution(cpp.Partition{{0, 2}, {1}}, w)

	assert.False(t, split.Equal(grand))
	assert.False(t, grand.Equal(split))
	assert.False(t, split.Equal(other))
}

func TestSolution_EqualIsTransitive(t *testing.T) {
	w := triangleWeights()

	a := cpp.NewSolution(cpp.Partition{{0, 1}, {2}}, w)
	b := cpp.NewSolution(cpp.Partition{{1, 0}, nil, {2}}, w)
	c := cpp.NewSolution(cpp.Partition{nil, {2}, {0, 1}}, w)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
}

func TestSolution_MergedCliquesWithEqualValueAreNotEqual(t *testing.T) {
	// All-zero weights: every partition has value 0, so equality must be
	// decided by the relation, not the value.
	w := [][]int{{0, 0}, {0, 0}}

	merged := cpp.NewSolution(cpp.Partition{{0, 1}, nil}, w)
	split := cpp.NewSolution(cpp.Partition{{0}, {1}}, w)

	assert.False(t, merged.Equal(split))
	assert.False(t, split.Equal(merged))
}

func TestSolution_ValueAndLookup(t *testing.T) {
	w := triangleWeights()
	s := cpp.NewSolution(cpp.Partition{{2}, {0, 1}}, w)

	assert.Equal(t, 10, s.Value)
	assert.Equal(t, []int{1, 1, 0}, s.CliqueIndexForVertex)
}

func TestSolution_LessOrdersByValue(t *testing.T) {
	w := triangleWeights()

	lo := cpp.NewSolution(cpp.Singletons(3), w)
	hi := cpp.NewSolution(cpp.Partition{{0, 1}, {2}}, w)

	assert.True(t, lo.Less(hi))
	assert.False(t, hi.Less(lo))
	assert.False(t, lo.Less(lo))
}
