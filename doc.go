// Package graphden is a compact toolkit for graphs over a dense, contiguous
// vertex id range [0, n) — build them, sweep them, span them.
//
// What is graphden?
//
//	A small, deterministic library built around one data structure:
//		• core/       — the Graph entity: adjacency lists, marks, parents
//		• components/ — BFS traversal and connected-component summaries
//		• mst/        — minimum spanning trees: Kruskal (union-find), Prim (heap)
//		• builder/    — seeded random graph generation for fixtures and benchmarks
//		• graphio/    — the whitespace-token weighted-graph text format
//
// Why graphden?
//
//   - Dense integer vertices — ids are array indexes, not map keys
//   - Deterministic — seeded generators, stable sorts, reproducible fixtures
//   - Pure Go — the only dependency is testify, and only in tests
//   - Strict invariants — simple graphs only: no self-loops, no parallel edges
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle: one component of size 4; its MST is any 3 of the 4 edges.
//
// See each package's doc.go for contracts, complexity notes, and errors.
//
//	go get github.com/torvenik/graphden
package graphden
