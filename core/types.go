// Package core defines the central Graph and Edge types for graphs whose
// vertices are dense integers in [0, VertexCount).
//
// The vertex set is fixed at construction; edges are added incrementally and
// never removed. A single sync.RWMutex guards the adjacency structure, so a
// graph may be built and queried from multiple goroutines. The per-vertex
// mark and parent arrays are scratch state for algorithms: the Graph imposes
// no meaning on their values, only range checks on vertex ids, and one
// algorithm run at a time owns them (reset before use).
//
// This file declares Edge, Graph, GraphOption, EdgeOption, sentinel errors,
// and the New constructor.
//
// Errors:
//
//	ErrVertexRange   - vertex id outside [0, VertexCount).
//	ErrSelfLoop      - edge endpoints are equal; loops are never allowed.
//	ErrDuplicateEdge - the ordered edge (from,to) already exists.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexRange indicates a vertex id outside [0, VertexCount).
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the ordered edge (from,to) already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Mark values commonly used by traversal algorithms. Marks are plain
// integers; these names cover the usual three-state discipline.
const (
	// Undiscovered marks a vertex not yet reached. Zero value, so MarkAll
	// after construction is optional for the first run.
	Undiscovered int64 = 0

	// Discovered marks a vertex reached but not fully processed.
	Discovered int64 = 1

	// Processed marks a vertex whose neighborhood has been exhausted.
	Processed int64 = 2
)

// NoParent is the parent value of a vertex with no parent link.
const NoParent = -1

// Edge is an immutable connection between two vertices.
//
// Edges live inside the Graph's adjacency lists and are handed out by value.
// For undirected graphs each edge is stored twice (once per direction) but
// counted once by EdgeCount.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the cost of the edge; 1 unless WithWeight was given.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes the new Graph directed: AddEdge(u,v) no longer implies
// the mirror edge (v,u).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithWeight overrides the default edge weight of 1.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// DefaultEdgeWeight is the weight of edges added without WithWeight.
const DefaultEdgeWeight = 1.0

// Graph is the core in-memory graph data structure.
//
// Vertices are the integers [0, vertexCount); both the vertex count and the
// directedness are fixed at construction. Adjacency is a slice of
// insertion-ordered edge slices indexed by source vertex. marks and parents
// carry algorithm-defined per-vertex state; the Graph only range-checks them.
type Graph struct {
	mu sync.RWMutex // guards adjacency, edgeCount, marks, parents

	directed    bool // true when AddEdge does not mirror
	vertexCount int  // fixed vertex universe size

	edgeCount int      // undirected edges counted once
	adj       [][]Edge // adj[v] = outgoing edges of v, insertion order

	marks   []int64 // caller-defined per-vertex mark
	parents []int   // caller-defined per-vertex parent id, NoParent if none
}

// New creates a Graph with the given number of vertices and no edges.
// By default the Graph is undirected. New panics on a negative vertexCount,
// which is a programmer error rather than a runtime condition.
// Complexity: O(V).
func New(vertexCount int, opts ...GraphOption) *Graph {
	if vertexCount < 0 {
		panic("core: New called with negative vertex count")
	}
	g := &Graph{
		vertexCount: vertexCount,
		adj:         make([][]Edge, vertexCount),
		marks:       make([]int64, vertexCount),
		parents:     make([]int, vertexCount),
	}
	for _, opt := range opts {
		opt(g)
	}
	// Vertices start with no parent link.
	for i := range g.parents {
		g.parents[i] = NoParent
	}

	return g
}
