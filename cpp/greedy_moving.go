// Package cpp - deterministic steepest-ascent local search (the GRASP
// "moving" phase).
//
// GreedyMoving maintains B[v][k]: the net value change of relocating
// vertex v into clique slot k, with one trailing column representing a
// fresh empty clique. It repeatedly applies the single best strictly
// positive move (ties: lowest row, then lowest column) and updates the
// table incrementally until no entry is positive — a fixed point of the
// single-vertex neighborhood.
//
// Updates on moving x from slot old to slot new:
//   - every vertex still in clique(old) gains W[·][x] across its row
//     (its stay-put baseline lost x);
//   - every vertex now in clique(new) loses W[·][x] across its row;
//   - column old loses W[·][x] and column new gains it for every row;
//   - row x is re-based so its stay-put entry is zero.
//
// When the chosen slot is the trailing empty column, a new trailing
// column is appended (copying the previous one) before the updates, so
// there is always exactly one "open a fresh clique" option.
//
// Complexity: O(N·C) per applied move for a table of C columns; the
// column append is amortized O(1) thanks to pre-reserved capacity.
package cpp

// GreedyMoving runs single-vertex steepest ascent to a fixed point and
// returns the improved partition with exactly N clique slots.
//
// Contract: weights validated, initial covers [0..N) exactly once.
// Idempotent: applying it to its own output changes nothing.
func GreedyMoving(weights [][]int, initial Partition) Partition {
	n := len(weights)

	current := initial.Clone()
	labels := current.Labels(n)

	benefit := initializeMovingBenefits(weights, current, labels)

	for {
		vertex, target, positive := bestMovingEntry(benefit)
		if !positive {
			break
		}

		from := labels[vertex]

		// Grow the slot list when the move opens the trailing column.
		for len(current) <= target {
			current = append(current, nil)
		}
		removeVertex(current, from, vertex)
		current[target] = append(current[target], vertex)
		labels[vertex] = target

		updateMovingBenefits(weights, current, benefit, vertex, from, target)
	}

	return compactToLength(current, n)
}

// initializeMovingBenefits allocates the N×(last non-empty slot + 2)
// table. Row capacity is pre-reserved to N+2 columns so the trailing
// column appends never reallocate in the loop.
func initializeMovingBenefits(weights [][]int, current Partition, labels []int) [][]int {
	n := len(weights)

	// One past the last non-empty slot, so the table covers every occupied
	// slot plus one guaranteed-empty trailing column.
	lastNonEmpty := 0

	var k int
	for k = range current {
		if len(current[k]) > 0 {
			lastNonEmpty = k + 1
		}
	}
	columns := lastNonEmpty + 1

	benefit := make([][]int, n)

	var (
		vertex, u, target int
		stayLoss, sum     int
	)
	for vertex = 0; vertex < n; vertex++ {
		row := make([]int, columns, n+2)

		// What leaving the current clique costs: the edge sum to the
		// clique mates.
		stayLoss = 0
		for _, u = range current[labels[vertex]] {
			if u == vertex {
				continue
			}
			stayLoss += weights[vertex][u]
		}

		for target = 0; target < columns; target++ {
			if target == labels[vertex] {
				continue // staying put is the zero baseline
			}

			sum = 0
			if target < len(current) {
				for _, u = range current[target] {
					sum += weights[vertex][u]
				}
			}
			row[target] = sum - stayLoss
		}
		benefit[vertex] = row
	}

	return benefit
}

// bestMovingEntry locates the maximal table entry and reports whether it
// is strictly positive. Ties resolve to the lowest row, then the lowest
// column.
func bestMovingEntry(benefit [][]int) (int, int, bool) {
	var (
		bestRow, bestCol int
		bestValue        = benefit[0][0]
		row              []int
		v, k             int
	)
	for v, row = range benefit {
		for k = range row {
			if row[k] > bestValue {
				bestValue = row[k]
				bestRow = v
				bestCol = k
			}
		}
	}

	return bestRow, bestCol, bestValue > 0
}

// removeVertex deletes vertex from slot k of current (order inside a
// clique carries no meaning, so the swap-delete is fine).
func removeVertex(current Partition, k, vertex int) {
	clique := current[k]

	var i int
	for i = range clique {
		if clique[i] == vertex {
			clique[i] = clique[len(clique)-1]
			current[k] = clique[:len(clique)-1]

			return
		}
	}
}

// updateMovingBenefits folds one applied move into the table; see the
// package comment for the four update rules.
func updateMovingBenefits(weights [][]int, current Partition, benefit [][]int, moved, from, target int) {
	columns := len(benefit[0])

	// The trailing column was consumed: append a fresh one (copy of the
	// previous trailing column) to every row.
	if target == columns-1 {
		var v int
		for v = range benefit {
			benefit[v] = append(benefit[v], benefit[v][columns-1])
		}
		columns++
	}

	var (
		u, k int
		row  []int
	)

	// Vertices that lost the moved one from their clique.
	for _, u = range current[from] {
		row = benefit[u]
		for k = range row {
			row[k] += weights[u][moved]
		}
	}

	// Vertices that gained it (the moved vertex's own row is re-based
	// below; its self-weight contribution here is zero anyway).
	for _, u = range current[target] {
		row = benefit[u]
		for k = range row {
			row[k] -= weights[u][moved]
		}
	}

	// Column updates: leaving `from` became cheaper, joining `target`
	// costlier, by the edge to the moved vertex.
	var v int
	for v = range benefit {
		benefit[v][from] -= weights[v][moved]
		benefit[v][target] += weights[v][moved]
	}

	// Re-base the moved vertex's row on its new home.
	base := benefit[moved][target]
	row = benefit[moved]
	for k = range row {
		row[k] -= base
	}
}
