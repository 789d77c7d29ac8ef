// Package cpp - partition representation and conversions.
//
// Two representations coexist: Partition (list of cliques) at API
// boundaries and label vectors (vertex → clique id) in hot paths and in
// the metric space. The conversions here are deterministic; semantic
// partition equality ignores clique ordering and empty-slot padding.
package cpp

// Partition is an ordered list of cliques over the vertex set [0..N).
// Each clique is a set of vertices (order inside a clique carries no
// meaning); a clique may be empty (reserved slot). In a well-formed
// partition the non-empty cliques are pairwise disjoint and their union is
// the full vertex set.
type Partition [][]int

// EmptyPartition returns a partition of n empty clique slots, the
// canonical starting point for GreedyAdding.
func EmptyPartition(n int) Partition {
	return make(Partition, n)
}

// Singletons returns the all-singletons partition of n vertices:
// clique i holds exactly vertex i.
func Singletons(n int) Partition {
	p := make(Partition, n)

	var v int
	for v = 0; v < n; v++ {
		p[v] = []int{v}
	}

	return p
}

// Clone returns a deep copy of p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))

	var i int
	for i = range p {
		if len(p[i]) == 0 {
			continue
		}
		out[i] = append([]int(nil), p[i]...)
	}

	return out
}

// Vertices counts the vertices placed in p (the sum of clique sizes).
func (p Partition) Vertices() int {
	var total, i int
	for i = range p {
		total += len(p[i])
	}

	return total
}

// Value computes the partition objective: the sum of weights[u][v] over
// all unordered intra-clique pairs. May be negative.
//
// Complexity: O(Σ |C|²) time, O(1) space.
func (p Partition) Value(weights [][]int) int {
	var (
		score   int
		clique  []int
		i, j, k int
	)
	for k = range p {
		clique = p[k]
		for i = 0; i < len(clique); i++ {
			for j = i + 1; j < len(clique); j++ {
				score += weights[clique[i]][clique[j]]
			}
		}
	}

	return score
}

// Labels converts p into a label vector of length n: labels[v] is the
// index of the clique containing v. Vertices never placed keep label -1
// (well-formed partitions have none).
//
// Complexity: O(n + Σ |C|).
func (p Partition) Labels(n int) []int {
	labels := make([]int, n)

	var v int
	for v = range labels {
		labels[v] = -1
	}

	var k int
	for k = range p {
		for _, v = range p[k] {
			labels[v] = k
		}
	}

	return labels
}

// PartitionFromLabels materializes a partition of exactly n clique slots
// from a label vector: vertex v joins clique labels[v]. The inverse of
// Labels modulo empty-slot padding.
//
// Complexity: O(n).
func PartitionFromLabels(labels []int, n int) Partition {
	p := make(Partition, n)

	var v int
	for v = range labels {
		p[labels[v]] = append(p[labels[v]], v)
	}

	return p
}

// sortNonEmptyFirst returns a copy of p with all non-empty cliques moved
// to the front (stable order), padded with empty slots to the original
// length, together with the number of non-empty cliques.
func sortNonEmptyFirst(p Partition) (Partition, int) {
	sorted := make(Partition, 0, len(p))

	var i int
	for i = range p {
		if len(p[i]) > 0 {
			sorted = append(sorted, p[i])
		}
	}
	nonEmpty := len(sorted)

	for len(sorted) < len(p) {
		sorted = append(sorted, nil)
	}

	return sorted, nonEmpty
}

// compactToLength squeezes the non-empty cliques of p into a partition of
// exactly n slots (non-empty first). Used where an algorithm temporarily
// grew the slot list past n while splitting cliques; a p that already has
// n slots is returned unchanged, empty slots in place.
func compactToLength(p Partition, n int) Partition {
	if len(p) == n {
		return p
	}
	sorted, _ := sortNonEmptyFirst(p)

	return sorted[:n]
}
