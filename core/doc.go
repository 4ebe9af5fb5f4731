// Package core provides an in-memory Graph over a dense, contiguous vertex
// id range with a minimal, strictly validated API surface.
//
// The Graph G = (V,E) has V fixed at construction as the integers
// [0, VertexCount); edges are appended incrementally and never removed.
// Only simple graphs are representable:
//
//   - Directed vs. undirected is chosen at construction (WithDirected)
//   - Self-loops are always rejected (ErrSelfLoop)
//   - Parallel edges are always rejected (ErrDuplicateEdge)
//   - Weights are float64 per edge, defaulting to 1 (WithWeight)
//   - An undirected edge lives in both endpoints' adjacency lists but is
//     counted once by EdgeCount and emitted once by AllEdges
//
// Why core.Graph?
//
//   - Array-backed — vertex ids index slices directly; no hashing, no maps.
//   - Deterministic iteration — adjacency preserves insertion order, and
//     AllEdges emits in source-vertex-then-insertion order.
//   - Algorithm scratch state — per-vertex marks (Undiscovered / Discovered /
//     Processed) and parent links (NoParent) with range checking only; the
//     Graph assigns them no meaning of its own.
//
// Core methods:
//
//	// Construction
//	New(vertexCount int, opts ...GraphOption) *Graph  // O(V); panics if vertexCount < 0
//
//	// Edges
//	AddEdge(from, to int, opts ...EdgeOption) error   // O(deg(from))
//	HasEdge(from, to int) bool                        // O(deg(from)); false, never error
//	EdgeList(v int) ([]Edge, error)                   // O(deg(v)) copy
//	ConnectedVertices(v int) ([]int, error)           // O(deg(v))
//	AllEdges() []Edge                                 // O(V+E), each edge once
//	Degree(v int) (int, error)                        // O(1) after range check
//
//	// Scratch state
//	Mark / MarkOf / MarkAll
//	SetParent / ParentOf / ClearParents
//
//	// Introspection
//	VertexCount() / EdgeCount() / Directed() / Clone()
//
// Concurrency: one RWMutex guards all mutable state, so construction and
// structural queries are safe across goroutines. The mark/parent arrays are
// shared scratch: concurrent algorithm runs over the same Graph must either
// coordinate externally or keep their own local state instead.
package core
