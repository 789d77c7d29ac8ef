// Package cpp defines common types, configuration options, and sentinel
// errors shared by the CPP constructors, the SA kernel, and the outer
// search strategies.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants.
//   - Extensibility: a single Options struct covers GRASP, DPS and FSS.
//   - Determinism: all random-driven components are controlled by a Seed.
//   - Zero surprises: defaults reproduce the reference parameterization.
package cpp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, input-shape, governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrEmptyProblem indicates a weight matrix with no vertices.
	ErrEmptyProblem = errors.New("cpp: empty problem (no vertices)")

	// ErrNonSquare indicates the weight matrix is not square.
	ErrNonSquare = errors.New("cpp: weight matrix is not square")

	// ErrAsymmetry indicates weights[i][j] != weights[j][i].
	ErrAsymmetry = errors.New("cpp: asymmetric weight matrix")

	// ErrNonZeroDiagonal indicates some weights[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("cpp: non-zero self-weight")

	// ErrBadOptions indicates an Options field outside its documented domain.
	ErrBadOptions = errors.New("cpp: invalid options")

	// ErrBadPartition indicates a partition that does not cover the vertex
	// set exactly once (overlapping or missing vertices).
	ErrBadPartition = errors.New("cpp: invalid partition")

	// ErrLabelLength indicates two label vectors of different length.
	ErrLabelLength = errors.New("cpp: label vectors differ in length")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Partition metric selector
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Metric enumerates the supported partition distances.
type Metric int

const (
	// RandError is the fraction of vertex pairs on which two labelings
	// disagree (same-clique in one, split in the other). Range [0,1].
	RandError Metric = iota

	// VariationOfInformation is H(X|Y) + H(Y|X) over the two clusterings'
	// joint distribution. Non-negative, unbounded above.
	VariationOfInformation
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// SA move types
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// moveType tags the neighborhood operator selected for an SA step.
type moveType int

const (
	// moveSingle relocates one vertex (classical or to an empty clique).
	moveSingle moveType = iota

	// moveEdge relocates the drawn vertex and the previously moved vertex
	// into the same target clique.
	moveEdge

	// movePush relocates the drawn vertex while the previously moved vertex
	// takes its place in the vacated clique.
	movePush
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TracePoint records one strict improvement of the best-known value during
// an outer search strategy.
type TracePoint struct {
	// Iteration is the outer-loop iteration at which the improvement landed.
	Iteration int

	// Elapsed is the wall-clock offset from the start of the run.
	Elapsed time.Duration

	// Value is the partition value after the improvement.
	Value int
}

// Result encapsulates the output of DiversePoolSearch or FixedSetSearch.
type Result struct {
	// Partition is the best partition found; length equals the vertex count
	// (trailing empty cliques permitted).
	Partition Partition

	// Value is the sum of intra-clique edge weights of Partition.
	Value int

	// Trace lists every strict improvement of the best value, in order.
	Trace []TracePoint
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs, matching the reference parameterization.
const (
	// DefaultBatchSizeScaleFactor is sigma: SA batch size = round(σ·K·N).
	DefaultBatchSizeScaleFactor = 8.0

	// DefaultCooldownFactor is theta, the geometric cooling rate.
	DefaultCooldownFactor = 0.96

	// DefaultMinimalTransitionRatio stops SA after five consecutive batches
	// whose acceptance ratio falls below it.
	DefaultMinimalTransitionRatio = 0.01

	// DefaultCandidateListLength is alpha, the RCL length of GreedyAdding.
	DefaultCandidateListLength = 2

	// DefaultIterations is the outer-loop iteration budget of DPS and FSS.
	DefaultIterations = 10_000

	// DefaultPoolSize is the DPS pool capacity (desired size).
	DefaultPoolSize = 10

	// DefaultImprovementFactor scales the DPS re-improvement schedule.
	DefaultImprovementFactor = 3

	// DefaultBaseSelectionSize is FSS m: the base solution is drawn from
	// the top-m records.
	DefaultBaseSelectionSize = 10

	// DefaultCandidatePoolSize is FSS n: the consensus subset is drawn from
	// the top-n records.
	DefaultCandidatePoolSize = 50

	// DefaultFixedSetSolutions is FSS k: the consensus subset size.
	DefaultFixedSetSolutions = 10

	// DefaultMaxStagnationPerPortion advances the FSS portion schedule
	// after this many iterations without a new best.
	DefaultMaxStagnationPerPortion = 20

	// DefaultFSSGraspIterations seeds FSS with this many GRASP rounds.
	DefaultFSSGraspIterations = 10

	// minimumTemperature flags a degenerate SA run (frequent zero-gain
	// moves keep the acceptance ratio up at arbitrarily low temperature).
	minimumTemperature = 5e-4

	// stagnationLimit is the number of consecutive low-acceptance batches
	// after which SA stops.
	stagnationLimit = 5
)

// Options defines configurable parameters for all search strategies.
// Zero value is not meaningful; use DefaultOptions() and override fields.
type Options struct {
	// InitialTemperature is the SA starting temperature. Values <= 0 mean
	// "auto": strategies calibrate it via CalibrateTemperature.
	InitialTemperature float64

	// BatchSizeScaleFactor is sigma in batch = round(σ·K·N). Must be > 0.
	BatchSizeScaleFactor float64

	// CooldownFactor is theta ∈ (0,1); temperature is multiplied by it
	// after every batch.
	CooldownFactor float64

	// MinimalTransitionRatio ∈ [0,1): batches accepting a smaller fraction
	// of steps count toward the stagnation limit.
	MinimalTransitionRatio float64

	// CandidateListLength is alpha, the GreedyAdding RCL length. Must be
	// >= 1.
	CandidateListLength int

	// AllowSingletonMoves permits SA to move a vertex that is already
	// alone into another empty clique. Default false.
	AllowSingletonMoves bool

	// Iterations bounds the DPS/FSS outer loop.
	Iterations int

	// TimeLimit bounds the wall-clock of DPS/FSS outer loops; zero means
	// no limit. Checked cooperatively after inner work units only.
	TimeLimit time.Duration

	// GRASPIterations is the seed-population budget. Zero means "derived":
	// 3·PoolSize for DPS, DefaultFSSGraspIterations for FSS.
	GRASPIterations int

	// PoolSize is the DPS pool capacity (desired size).
	PoolSize int

	// ImprovementFactor scales the DPS re-improvement schedule.
	ImprovementFactor int

	// BaseSelectionSize is FSS m. CandidatePoolSize is FSS n.
	// FixedSetSolutions is FSS k. See the FSS documentation.
	BaseSelectionSize int
	CandidatePoolSize int
	FixedSetSolutions int

	// MaxStagnationPerPortion advances the FSS portion schedule after this
	// many iterations without improving the best value.
	MaxStagnationPerPortion int

	// ResultLog, when non-empty, makes DiversePoolSearch write the final
	// pool values one per line (pool order) to this path.
	ResultLog string

	// Seed controls the process-wide RNG. Zero keeps the fixed default
	// state; any other value reseeds deterministically before the run.
	Seed int64
}

// DefaultOptions returns a fully populated Options struct reproducing the
// reference parameterization: σ=8, θ=0.96, minimal transition ratio 0.01,
// α=2, auto-calibrated temperature, 10k iterations, DPS pool of 10 with
// improvement factor 3, FSS m=10/n=50/k=10 with stagnation limit 20.
func DefaultOptions() Options {
	return Options{
		InitialTemperature:      0, // auto-calibrate
		BatchSizeScaleFactor:    DefaultBatchSizeScaleFactor,
		CooldownFactor:          DefaultCooldownFactor,
		MinimalTransitionRatio:  DefaultMinimalTransitionRatio,
		CandidateListLength:     DefaultCandidateListLength,
		AllowSingletonMoves:     false,
		Iterations:              DefaultIterations,
		TimeLimit:               0,
		GRASPIterations:         0, // derived per strategy
		PoolSize:                DefaultPoolSize,
		ImprovementFactor:       DefaultImprovementFactor,
		BaseSelectionSize:       DefaultBaseSelectionSize,
		CandidatePoolSize:       DefaultCandidatePoolSize,
		FixedSetSolutions:       DefaultFixedSetSolutions,
		MaxStagnationPerPortion: DefaultMaxStagnationPerPortion,
		ResultLog:               "",
		Seed:                    0,
	}
}
