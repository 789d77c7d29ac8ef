// Package cpp - the bounded diverse solution pool.
//
// SolutionManager keeps a value-descending list of records bounded by a
// capacity, with a Rand-error similarity threshold: no stored pair is
// closer than the threshold, and a candidate only enters when no similar
// record with a higher value already exists. Inserting evicts every
// similar-but-worse record and truncates back to capacity.
package cpp

import "sort"

// SolutionManager is the bounded, value-sorted, similarity-deduplicated
// pool used by DiversePoolSearch.
type SolutionManager struct {
	solutions           []Solution
	similarityThreshold float64
	maxCapacity         int
}

// NewSolutionManager creates an empty pool with the given Rand-error
// similarity threshold and capacity bound.
func NewSolutionManager(similarityThreshold float64, maxCapacity int) *SolutionManager {
	return &SolutionManager{
		similarityThreshold: similarityThreshold,
		maxCapacity:         maxCapacity,
	}
}

// Initialize replaces the pool content: records are sorted by value
// descending (stable) and truncated to capacity. Similarity pre-filtering
// of the seed population is the caller's job, not Initialize's.
func (m *SolutionManager) Initialize(initial []Solution) {
	m.solutions = append(m.solutions[:0:0], initial...)
	sort.SliceStable(m.solutions, func(i, j int) bool {
		return m.solutions[j].Less(m.solutions[i])
	})

	if len(m.solutions) > m.maxCapacity {
		m.solutions = m.solutions[:m.maxCapacity]
	}
}

// Count returns the current pool size.
func (m *SolutionManager) Count() int {
	return len(m.solutions)
}

// Solution returns the record at rank i (0 is the best).
func (m *SolutionManager) Solution(i int) Solution {
	return m.solutions[i]
}

// Best returns the highest-valued record.
func (m *SolutionManager) Best() Solution {
	return m.solutions[0]
}

// Worst returns the lowest-valued record.
func (m *SolutionManager) Worst() Solution {
	return m.solutions[len(m.solutions)-1]
}

// All returns the stored records in pool order (value descending).
func (m *SolutionManager) All() []Solution {
	return m.solutions
}

// SimilarSolutionExists reports whether any stored record is closer to
// candidate than the similarity threshold.
func (m *SolutionManager) SimilarSolutionExists(candidate Solution) bool {
	var s Solution
	for _, s = range m.solutions {
		if m.isSimilar(candidate, s) {
			return true
		}
	}

	return false
}

// ExistsSimilarSolutionWithHigherValue reports whether a record ranked
// strictly above candidate's insertion position is similar to it.
func (m *SolutionManager) ExistsSimilarSolutionWithHigherValue(candidate Solution) bool {
	position := m.findInsertPosition(candidate)

	var i int
	for i = 0; i < position; i++ {
		if m.isSimilar(candidate, m.solutions[i]) {
			return true
		}
	}

	return false
}

// TryAddSolution inserts candidate when it ranks inside the capacity and
// no similar better record exists; similar-but-worse records are evicted
// and the pool is truncated back to capacity. Returns whether the
// candidate was inserted and whether it became the new best.
func (m *SolutionManager) TryAddSolution(candidate Solution) (inserted, newBest bool) {
	position := m.findInsertPosition(candidate)
	if position >= m.maxCapacity {
		return false, false
	}
	if m.ExistsSimilarSolutionWithHigherValue(candidate) {
		return false, false
	}

	m.solutions = append(m.solutions, Solution{})
	copy(m.solutions[position+1:], m.solutions[position:])
	m.solutions[position] = candidate

	m.removeSimilarWithLowerValue(candidate, position)

	if len(m.solutions) > m.maxCapacity {
		m.solutions = m.solutions[:m.maxCapacity]
	}

	return true, position == 0
}

// isSimilar compares two records in the Rand-error metric space.
func (m *SolutionManager) isSimilar(a, b Solution) bool {
	return PartitionDistance(a.CliqueIndexForVertex, b.CliqueIndexForVertex, RandError) < m.similarityThreshold
}

// findInsertPosition returns the rank of the first stored record whose
// value is strictly below the candidate's.
func (m *SolutionManager) findInsertPosition(candidate Solution) int {
	var i int
	for i = range m.solutions {
		if m.solutions[i].Less(candidate) {
			return i
		}
	}

	return len(m.solutions)
}

// removeSimilarWithLowerValue evicts every record ranked after start that
// is similar to the just-inserted record.
func (m *SolutionManager) removeSimilarWithLowerValue(inserted Solution, start int) {
	var i int
	for i = start + 1; i < len(m.solutions); i++ {
		if m.isSimilar(inserted, m.solutions[i]) {
			m.solutions = append(m.solutions[:i], m.solutions[i+1:]...)
			i--
		}
	}
}
