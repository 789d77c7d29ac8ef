// Package cpp - randomized greedy constructor (the GRASP "adding" phase).
//
// GreedyAdding extends a (possibly empty) partial partition to a full one.
// Each step consults a benefit table B[i][k] — the edge-weight sum from
// candidate vertex i to the vertices currently in clique slot k — and
// draws the placement uniformly from a Restricted Candidate List (RCL) of
// the best (vertex, clique, benefit) triples. Only the slots up to and
// including the first empty one are considered: the first empty slot is
// the single "open a new clique" option, and every slot beyond it is
// redundant.
//
// Contracts:
//   - Vertices already placed in the initial partition stay where they
//     are; every remaining vertex is assigned exactly once.
//   - The output has exactly N clique slots (padded with empty ones).
//
// Complexity: O(N²) table initialization, then N steps of O(candidates ·
// firstEmpty) RCL scans plus an O(candidates) incremental column update.
package cpp

// rclEntry is one (candidate row, clique slot, benefit) triple of the RCL.
type rclEntry struct {
	candidateIndex int
	cliqueIndex    int
	benefit        int
}

// GreedyAddingEmpty builds a full partition from scratch.
func GreedyAddingEmpty(weights [][]int, candidateListLength int) Partition {
	return GreedyAdding(weights, EmptyPartition(len(weights)), candidateListLength)
}

// GreedyAdding extends initial to a full partition over [0..N), keeping
// every already-placed vertex in its clique.
func GreedyAdding(weights [][]int, initial Partition, candidateListLength int) Partition {
	n := len(weights)

	current := initial.Clone()
	for len(current) < n {
		current = append(current, nil)
	}

	// Candidates are the vertices the initial partition does not place.
	placed := make([]bool, n)

	var k, v int
	for k = range current {
		for _, v = range current[k] {
			placed[v] = true
		}
	}

	candidates := make([]int, 0, n)
	for v = 0; v < n; v++ {
		if !placed[v] {
			candidates = append(candidates, v)
		}
	}

	benefit := initializeAddingBenefits(candidates, current, weights)

	steps := len(candidates)

	var step int
	for step = 0; step < steps; step++ {
		candidates, benefit = addVertexStep(candidates, benefit, current, weights, candidateListLength)
	}

	return current[:n]
}

// initializeAddingBenefits fills B[i][k] by direct summation over the
// current clique populations.
func initializeAddingBenefits(candidates []int, current Partition, weights [][]int) [][]int {
	benefit := make([][]int, len(candidates))

	var (
		i, k, sum int
		u         int
	)
	for i = range candidates {
		row := make([]int, len(current))
		for k = range current {
			sum = 0
			for _, u = range current[k] {
				sum += weights[candidates[i]][u]
			}
			row[k] = sum
		}
		benefit[i] = row
	}

	return benefit
}

// addVertexStep performs one placement: pick via the RCL, extend the
// clique, fold the placed vertex into the remaining candidates' column,
// and drop its row. Returns the shrunk candidate list and table.
func addVertexStep(candidates []int, benefit [][]int, current Partition, weights [][]int, candidateListLength int) ([]int, [][]int) {
	firstEmpty := firstEmptyCliqueIndex(current)

	candidateIndex, cliqueIndex := pickRandomAddingMove(benefit, candidateListLength, candidates, firstEmpty)

	moved := candidates[candidateIndex]
	current[cliqueIndex] = append(current[cliqueIndex], moved)

	var i int
	for i = range candidates {
		benefit[i][cliqueIndex] += weights[candidates[i]][moved]
	}

	candidates = append(candidates[:candidateIndex], candidates[candidateIndex+1:]...)
	benefit = append(benefit[:candidateIndex], benefit[candidateIndex+1:]...)

	return candidates, benefit
}

// firstEmptyCliqueIndex returns the index of the first empty slot. While
// any candidate remains unplaced such a slot always exists.
func firstEmptyCliqueIndex(current Partition) int {
	var k int
	for k = range current {
		if len(current[k]) == 0 {
			return k
		}
	}

	return len(current) - 1
}

// pickRandomAddingMove maintains the RCL: it is seeded with the leading
// slots of the first candidate's row, then every table entry that strictly
// beats the current RCL minimum displaces that minimum. The final draw is
// uniform over the list — unless the list's best benefit is zero, in which
// case a random candidate is placed into its first zero-benefit slot (the
// first empty slot guarantees one exists).
func pickRandomAddingMove(benefit [][]int, candidateListLength int, candidates []int, firstEmpty int) (int, int) {
	// Seed from row 0, clamped to the existing slots.
	seed := candidateListLength
	if seed > len(benefit[0]) {
		seed = len(benefit[0])
	}

	rcl := make([]rclEntry, 0, seed+1)

	var i int
	for i = 0; i < seed; i++ {
		rcl = append(rcl, rclEntry{candidateIndex: 0, cliqueIndex: i, benefit: benefit[0][i]})
	}

	rclMinimum := rcl[minBenefitIndex(rcl)].benefit

	// Traverse the table up to and including the first empty slot; slots
	// beyond it are interchangeable with it.
	var (
		row   []int
		bound = firstEmpty
		k     int
	)
	for i, row = range benefit {
		if bound >= len(row) {
			bound = len(row) - 1
		}
		for k = 0; k <= bound; k++ {
			if row[k] <= rclMinimum {
				continue
			}

			rcl = append(rcl, rclEntry{candidateIndex: i, cliqueIndex: k, benefit: row[k]})
			drop := minBenefitIndex(rcl)
			rcl = append(rcl[:drop], rcl[drop+1:]...)
			rclMinimum = rcl[minBenefitIndex(rcl)].benefit
		}
	}

	best := rcl[maxBenefitIndex(rcl)].benefit
	if best == 0 {
		// Zero-improvement ties: random candidate, first zero slot.
		candidateIndex := randBelow(len(candidates))
		row = benefit[candidateIndex]
		for k = range row {
			if row[k] == 0 {
				return candidateIndex, k
			}
		}
	}

	chosen := rcl[randBelow(len(rcl))]

	return chosen.candidateIndex, chosen.cliqueIndex
}

// minBenefitIndex returns the index of the first minimal-benefit entry.
func minBenefitIndex(rcl []rclEntry) int {
	var best, i int
	for i = 1; i < len(rcl); i++ {
		if rcl[i].benefit < rcl[best].benefit {
			best = i
		}
	}

	return best
}

// maxBenefitIndex returns the index of the first maximal-benefit entry.
func maxBenefitIndex(rcl []rclEntry) int {
	var best, i int
	for i = 1; i < len(rcl); i++ {
		if rcl[i].benefit > rcl[best].benefit {
			best = i
		}
	}

	return best
}
