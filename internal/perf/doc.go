// Package perf contains paired demonstration kernels for Go-level
// performance behavior: each pair computes the same result, once the
// slow way and once the fast way. Run the benchmarks to see gap:
//
//	go test -bench . ./internal/perf
//
// Covered: interface-typed struct fields vs concrete fields, temporary
// allocation in vectorized style vs fused loops, copy vs in-place
// slice updates, traversal order over a flat matrix, and a mutable
// package-level accumulator vs passed-in state.
package perf
