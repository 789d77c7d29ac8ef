// Package cpp - white-box invariants of the incremental tables: the
// moving-table fixed point and the SA step/value consistency.
package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedWeights is a small signed instance with no special structure.
func mixedWeights() [][]int {
	return [][]int{
		{0, 4, -2, 1, -3},
		{4, 0, 3, -1, 2},
		{-2, 3, 0, 5, -4},
		{1, -1, 5, 0, 2},
		{-3, 2, -4, 2, 0},
	}
}

func TestGreedyMoving_FixedPointHasNoPositiveBenefit(t *testing.T) {
	w := mixedWeights()
	n := len(w)

	p := GreedyMoving(w, Singletons(n))

	labels := p.Labels(n)
	benefit := initializeMovingBenefits(w, p, labels)

	var v, k int
	for v = range benefit {
		for k = range benefit[v] {
			assert.LessOrEqual(t, benefit[v][k], 0,
				"entry [%d][%d] still positive after termination", v, k)
		}
	}
}

func TestAnnealState_StepRewardMatchesValueDelta(t *testing.T) {
	Seed(42)

	w := mixedWeights()
	n := len(w)

	initial := GreedyAddingEmpty(w, 2)
	sorted, k := sortNonEmptyFirst(initial)

	st := newAnnealState(w, sorted, k, false)
	value := sorted.Value(w)

	// High temperature so plenty of worsening moves are exercised too.
	const temperature = 50.0

	var (
		previous int
		step     int
	)
	for step = 0; step < 2000; step++ {
		accepted, reward, moved := st.step(previous, temperature)
		previous = moved

		if !accepted {
			continue
		}
		value += reward

		recomputed := PartitionFromLabels(st.cliqueOf, n).Value(w)
		require.Equal(t, recomputed, value,
			"incremental value diverged at step %d (reward %d)", step, reward)
	}
}

func TestAnnealState_LookupsStayConsistent(t *testing.T) {
	Seed(43)

	w := mixedWeights()
	n := len(w)

	sorted, k := sortNonEmptyFirst(GreedyAddingEmpty(w, 2))
	st := newAnnealState(w, sorted, k, false)

	var previous, step, v int
	for step = 0; step < 500; step++ {
		_, _, moved := st.step(previous, 10.0)
		previous = moved

		// cliqueOf and cliqueSize must describe the same partition.
		sizes := make([]int, n)
		for v = 0; v < n; v++ {
			slot := st.cliqueOf[v]
			require.GreaterOrEqual(t, slot, 0)
			require.Less(t, slot, n)
			sizes[slot]++
		}
		for v = 0; v < n; v++ {
			require.Equal(t, sizes[v], st.cliqueSize[v], "slot %d size drifted", v)
		}
	}
}

func TestSortNonEmptyFirst_PreservesLengthAndOrder(t *testing.T) {
	p := Partition{nil, {3}, nil, {0, 1}, {2}}

	sorted, nonEmpty := sortNonEmptyFirst(p)

	assert.Equal(t, 3, nonEmpty)
	assert.Len(t, sorted, len(p))
	assert.Equal(t, Partition{{3}, {0, 1}, {2}, nil, nil}, sorted)
}

func TestFixedSetSizePortions_ScheduleShape(t *testing.T) {
	assert.Equal(t, []float64{0}, fixedSetSizePortions(6), "tiny instances get the all-free portion")
	assert.Equal(t, []float64{0.5}, fixedSetSizePortions(10))
	assert.Equal(t, []float64{0.5, 0.75}, fixedSetSizePortions(20))
	assert.Equal(t, []float64{0.5, 0.75, 0.875}, fixedSetSizePortions(40))
}
