// Package cpp solves the Clique Partitioning Problem (CPP): given a complete
// undirected graph whose edges carry signed integer weights, partition the
// vertex set into disjoint cliques so that the sum of intra-clique edge
// weights is maximized.
//
// 🚀 What is inside?
//
//	The package couples a Simulated Annealing local-search kernel with two
//	outer strategies built on a GRASP constructor:
//
//	  • GreedyAdding    — randomized greedy constructor (RCL-driven)
//	  • GreedyMoving    — deterministic steepest-ascent single-vertex moves
//	  • Anneal          — SA with MOVE / EDGE / PUSH neighborhood operators
//	                      over an incrementally maintained benefit table
//	  • GRASP           — repeated {adding → moving → SA} producing a
//	                      population of diverse local optima
//	  • DiversePoolSearch — bounded diverse pool (Rand-error keyed) that is
//	                      iteratively polished and re-improved
//	  • FixedSetSearch  — consensus-based partial fixing + rebuild loop
//
// ✨ Design:
//   - Deterministic — every random draw flows through a process-wide
//     xoshiro128+ generator; fixed seed ⇒ bitwise-identical runs.
//   - Single-threaded — no locks, no goroutines; wall-clock deadlines are
//     checked cooperatively in the outer loops only.
//   - Hot-path discipline — dense row-major benefit tables updated
//     incrementally (O(N) per applied move), no hidden allocations.
//   - Strict sentinels — validation errors come from types.go; inner
//     components assume validated inputs and never fail.
//
// ⚙️ Usage:
//
//	weights, err := cpn.ReadFile("instance.txt")
//	if err != nil { … }
//
//	opts := cpp.DefaultOptions()
//	opts.TimeLimit = 5 * time.Minute
//	res, err := cpp.FixedSetSearch(weights, opts)
//	if err != nil { … }
//	fmt.Println(res.Value, res.Partition)
//
// Complexity: one SA batch is O(σ·K·N) steps of O(K) each; the dominant
// memory is the N×N weight matrix plus the K×N benefit table.
package cpp
