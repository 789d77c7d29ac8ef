// Package cpn reads Clique Partitioning Problem instances in the
// plain-text CPn format:
//
//	line 1:  the vertex count N
//	then:    N·(N−1)/2 signed integers — the strict upper triangle of the
//	         weight matrix in row-major order
//	         (W[0][1], W[0][2], …, W[0][N−1], W[1][2], …)
//
// Tokens may be separated by any mix of spaces and newlines. The reader
// materializes the full symmetric N×N matrix with a zero diagonal, ready
// for the cpp solver package.
package cpn
