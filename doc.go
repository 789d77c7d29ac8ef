// Package cliquepart is a metaheuristic solver for the Clique Partitioning
// Problem (CPP) on complete graphs with signed integer edge weights.
//
// 🚀 What is cliquepart?
//
//	A single-threaded, fully deterministic (under a fixed seed) search
//	engine that partitions the vertex set into disjoint cliques so that
//	the sum of intra-clique edge weights is maximized:
//
//	  • Simulated Annealing kernel with an extended neighborhood
//	    (single-vertex MOVE plus two-vertex EDGE and PUSH operators)
//	  • GRASP construction (randomized greedy adding → greedy moving → SA)
//	  • Two outer strategies: Fixed-Set Search and Diverse Pool Search
//
// Everything is organized under focused subpackages:
//
//	cpp/           — the solver core: RNG, partition model, metrics,
//	                 constructors, SA kernel, pool, DPS & FSS strategies
//	cpn/           — reader for the plain-text CPn instance format
//	observability/ — prometheus counters & gauges for the search
//	plot/          — convergence chart rendering (HTML)
//	cmd/cliquepart — command-line entry point (dps / fss)
//
// Quick ASCII example (planted triangles, +3 inside, −10 across):
//
//	    0───1        3───4
//	     ╲ ╱          ╲ ╱
//	      2            5
//
//	the optimum partition is {0,1,2}, {3,4,5} with value 18.
//
// Dive into cpp/doc.go for the algorithmic details and into
// cmd/cliquepart for the CLI surface.
//
//	go get github.com/katalvlaran/cliquepart
package cliquepart
