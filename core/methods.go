// Package core: Graph edge and adjacency operations.
//
// This file implements edge insertion, existence checks, adjacency queries,
// and whole-graph edge enumeration. All validation happens before any
// mutation, so a failed call leaves the Graph untouched.

package core

import "fmt"

// validVertex reports whether v is inside [0, vertexCount).
func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.vertexCount
}

// checkVertex returns ErrVertexRange (with the offending id attached)
// unless v is a legal vertex id.
func (g *Graph) checkVertex(v int) error {
	if !g.validVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexRange, v)
	}

	return nil
}

// AddEdge inserts the edge from→to with weight 1 unless WithWeight is given.
// For an undirected Graph the mirror edge to→from is stored as well, but
// EdgeCount still rises by exactly one.
//
// Returns ErrVertexRange if either endpoint is out of range, ErrSelfLoop if
// from == to, ErrDuplicateEdge if the ordered edge already exists. On error
// nothing is mutated.
// Complexity: O(deg(from)) for the duplicate scan.
func (g *Graph) AddEdge(from, to int, opts ...EdgeOption) error {
	// 1) Validate endpoints before taking the lock.
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	// 2) Loops are never legal in a simple graph.
	if from == to {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Reject parallel edges; the scan is over from's list only, since the
	//    mirror entry exists iff the forward one does.
	if g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, from, to)
	}

	// 4) Build the edge and apply per-edge options.
	e := Edge{From: from, To: to, Weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&e)
	}

	// 5) Append; undirected graphs mirror with endpoints swapped.
	g.adj[from] = append(g.adj[from], e)
	if !g.directed {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: e.Weight})
	}
	g.edgeCount++

	return nil
}

// hasEdgeLocked scans from's adjacency list for to. Callers hold g.mu.
func (g *Graph) hasEdgeLocked(from, to int) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether the ordered edge from→to exists. Out-of-range ids
// yield false rather than an error, so speculative existence checks (as used
// by random generation) never fail.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	if !g.validVertex(from) || !g.validVertex(to) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// EdgeList returns a copy of v's outgoing edges in insertion order.
// A vertex with no outgoing edges yields an empty, non-nil slice.
// Complexity: O(deg(v)).
func (g *Graph) EdgeList(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// ConnectedVertices returns the destination of every edge leaving v, in
// insertion order. A vertex with no outgoing edges yields an empty,
// non-nil slice.
// Complexity: O(deg(v)).
func (g *Graph) ConnectedVertices(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj[v]))
	for i, e := range g.adj[v] {
		out[i] = e.To
	}

	return out, nil
}

// AllEdges returns every edge exactly once, ordered by source vertex and then
// insertion order. For an undirected Graph the mirrored storage would emit
// each edge twice, so an entry is reported only when its To exceeds its From.
// Complexity: O(V + E).
func (g *Graph) AllEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adj {
		for _, e := range list {
			if g.directed || e.To > e.From {
				out = append(out, e)
			}
		}
	}

	return out
}

// Degree returns the out-degree of v; for an undirected Graph this is the
// total degree, since both directions are stored.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// VertexCount returns the fixed number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the number of edges, counting each undirected edge once.
// O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether this is a directed graph. O(1).
func (g *Graph) Directed() bool {
	return g.directed
}

// Clone returns a deep copy of the Graph's structure. The copy's marks and
// parents start fresh (zero marks, no parents): scratch state belongs to a
// single algorithm run and is not carried across copies.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:    g.directed,
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
		adj:         make([][]Edge, g.vertexCount),
		marks:       make([]int64, g.vertexCount),
		parents:     make([]int, g.vertexCount),
	}
	for v, list := range g.adj {
		clone.adj[v] = make([]Edge, len(list))
		copy(clone.adj[v], list)
	}
	for i := range clone.parents {
		clone.parents[i] = NoParent
	}

	return clone
}
