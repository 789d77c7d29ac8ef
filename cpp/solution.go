// Package cpp - the solution record: a partition bundled with its value
// and a vertex → clique index lookup.
package cpp

// Solution binds a partition to its objective value and to the
// cliqueIndexForVertex lookup derived from it. Records are values: they
// are constructed once (at construction or improvement) and never mutated;
// a new record is made whenever a better partition is found.
type Solution struct {
	// Partition is the underlying partition (length N with possible empty
	// slots).
	Partition Partition

	// Value is Partition.Value(weights) at construction time.
	Value int

	// CliqueIndexForVertex[v] is the index of the clique containing v.
	CliqueIndexForVertex []int
}

// NewSolution computes the value and the vertex lookup for partition.
//
// Complexity: O(N + Σ |C|²).
func NewSolution(partition Partition, weights [][]int) Solution {
	n := len(weights)

	return Solution{
		Partition:            partition,
		Value:                partition.Value(weights),
		CliqueIndexForVertex: partition.Labels(n),
	}
}

// Equal reports semantic partition equality: s and other are equal iff for
// every vertex pair (u,v), u and v share a clique in s exactly when they
// share a clique in other. Clique ordering and empty-slot padding are
// irrelevant. The value comparison is a cheap necessary condition checked
// first.
//
// Complexity: O(N) via the clique-index lookups.
func (s Solution) Equal(other Solution) bool {
	if s.Value != other.Value {
		return false
	}
	if nonEmptyCliques(s.Partition) != nonEmptyCliques(other.Partition) {
		return false
	}

	// Every clique of s must land inside a single clique of other; with the
	// non-empty counts equal this forces a bijection between cliques, i.e.
	// identical equivalence relations.
	var (
		clique     []int
		vertex     int
		otherIndex int
	)
	for _, clique = range s.Partition {
		if len(clique) == 0 {
			continue
		}

		otherIndex = other.CliqueIndexForVertex[clique[0]]
		for _, vertex = range clique {
			if other.CliqueIndexForVertex[vertex] != otherIndex {
				return false
			}
		}
	}

	return true
}

// Less orders records by value ascending. Ties are broken arbitrarily but
// consistently (stable sorts preserve insertion order).
func (s Solution) Less(other Solution) bool {
	return s.Value < other.Value
}

// nonEmptyCliques counts the occupied slots of p.
func nonEmptyCliques(p Partition) int {
	var count, i int
	for i = range p {
		if len(p[i]) > 0 {
			count++
		}
	}

	return count
}
