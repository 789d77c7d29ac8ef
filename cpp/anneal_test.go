// Package cpp_test - the SA kernel via the public API: monotonicity,
// boundary instances, determinism, calibration.
package cpp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquepart/cpp"
)

func annealOptions() cpp.Options {
	opts := cpp.DefaultOptions()
	opts.InitialTemperature = 20

	return opts
}

func TestAnneal_NeverReturnsWorseThanInput(t *testing.T) {
	w := plantedTriangles()
	opts := annealOptions()

	starts := []cpp.Partition{
		cpp.Singletons(len(w)),
		{{0, 3}, {1, 4}, {2, 5}, nil, nil, nil},
		{{0, 1, 2, 3, 4, 5}, nil, nil, nil, nil, nil},
	}

	var s cpp.Partition
	for _, s = range starts {
		cpp.Seed(11)
		out := cpp.Anneal(w, s, opts.InitialTemperature, opts)

		assert.GreaterOrEqual(t, out.Value(w), s.Value(w), "start %v", s)
		assertCoversVertexSet(t, out, len(w))
		assert.Len(t, out, len(w))
	}
}

func TestAnneal_FindsPlantedTriangles(t *testing.T) {
	w := plantedTriangles()
	opts := annealOptions()

	cpp.Seed(12)
	start := cpp.GreedyMoving(w, cpp.Singletons(len(w)))
	require.Equal(t, 18, start.Value(w), "steepest ascent alone reaches the optimum")

	out := cpp.Anneal(w, start, opts.InitialTemperature, opts)

	assert.Equal(t, 18, out.Value(w), "SA never loses the best-so-far")
}

func TestAnneal_PositivePairMerges(t *testing.T) {
	w := [][]int{{0, 5}, {5, 0}}
	opts := annealOptions()

	cpp.Seed(13)
	out := cpp.Anneal(w, cpp.Singletons(2), opts.InitialTemperature, opts)

	assert.Equal(t, 5, out.Value(w))
}

func TestAnneal_NegativePairStaysApart(t *testing.T) {
	w := [][]int{{0, -3}, {-3, 0}}
	opts := annealOptions()

	cpp.Seed(14)
	out := cpp.Anneal(w, cpp.Singletons(2), opts.InitialTemperature, opts)

	assert.Equal(t, 0, out.Value(w))
	assert.Equal(t, 2, countNonEmpty(out))
}

func TestAnneal_SingleVertexTerminates(t *testing.T) {
	w := [][]int{{0}}
	opts := annealOptions()

	cpp.Seed(15)
	out := cpp.Anneal(w, cpp.Partition{{0}}, opts.InitialTemperature, opts)

	assert.Equal(t, 0, out.Value(w))
	assertCoversVertexSet(t, out, 1)
}

func TestAnneal_AllZeroWeightsTerminatesViaTemperatureCollapse(t *testing.T) {
	// Every move has zero gain and is always accepted, so the acceptance
	// ratio never stagnates; the kernel must exit on temperature collapse
	// and still return a valid partition.
	w := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	opts := annealOptions()
	opts.InitialTemperature = 1 // keep the cooldown path short

	cpp.Seed(16)
	out := cpp.Anneal(w, cpp.Singletons(3), opts.InitialTemperature, opts)

	assert.Equal(t, 0, out.Value(w))
	assertCoversVertexSet(t, out, 3)
}

func TestAnneal_DeterministicUnderFixedSeed(t *testing.T) {
	w := plantedTriangles()
	opts := annealOptions()

	cpp.Seed(17)
	first := cpp.Anneal(w, cpp.Singletons(len(w)), opts.InitialTemperature, opts)

	cpp.Seed(17)
	second := cpp.Anneal(w, cpp.Singletons(len(w)), opts.InitialTemperature, opts)

	assert.Equal(t, first.Labels(len(w)), second.Labels(len(w)),
		"identical seed and input must reproduce the label vector bitwise")
}

func TestCalibrateTemperature_StaysInBisectionRange(t *testing.T) {
	w := plantedTriangles()
	opts := cpp.DefaultOptions()

	temperature, err := cpp.CalibrateTemperature(w, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, temperature, 1.0)
	assert.LessOrEqual(t, temperature, 2000.0)
}

func TestCalibrateTemperature_TerminatesOnDegenerateInstance(t *testing.T) {
	// All-zero weights accept every step at any temperature; the bisection
	// must still terminate.
	w := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	temperature, err := cpp.CalibrateTemperature(w, cpp.DefaultOptions())
	require.NoError(t, err)
	assert.Positive(t, temperature)
}

func TestCalibrateTemperature_RejectsBadInput(t *testing.T) {
	_, err := cpp.CalibrateTemperature(nil, cpp.DefaultOptions())
	assert.ErrorIs(t, err, cpp.ErrEmptyProblem)

	_, err = cpp.CalibrateTemperature([][]int{{0, 1}, {2, 0}}, cpp.DefaultOptions())
	assert.ErrorIs(t, err, cpp.ErrAsymmetry)

	bad := cpp.DefaultOptions()
	bad.CooldownFactor = 1.5
	_, err = cpp.CalibrateTemperature(plantedTriangles(), bad)
	assert.ErrorIs(t, err, cpp.ErrBadOptions)
}
