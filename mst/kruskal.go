// Package mst: Kruskal's algorithm over an undirected core.Graph.

package mst

import (
	"sort"

	"github.com/torvenik/graphden/core"
)

// Kruskal computes a minimum spanning tree of an undirected graph using a
// global edge sort and a DisjointSet.
//
// A disconnected graph is not an error: the result is the minimum spanning
// forest — the union of each component's minimum spanning tree — and callers
// that need full connectivity should check len(edges) == VertexCount()-1 or
// consult the components package. The Graph itself is never mutated.
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed().
//  2. Collect all edges once via AllEdges().
//  3. Sort ascending by weight with sort.SliceStable, so equal-weight edges
//     keep their AllEdges emission order and the chosen tree is
//     deterministic (any tie order yields the same total weight).
//  4. Union-find over vertex ids: an edge joins the forest iff its
//     endpoints' roots differ; accepted edges accumulate the total weight.
//  5. Stop early once a single set remains: every further edge would cycle.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrGraphNil
	}
	if graph.Directed() {
		return nil, 0, ErrDirected
	}

	n := graph.VertexCount()
	if n == 0 {
		// No vertices: the empty forest.
		return []core.Edge{}, 0, nil
	}

	// Collect and stably sort the edge set by ascending weight.
	edges := graph.AllEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// Every vertex starts as its own singleton component.
	ds := NewDisjointSet(n)

	forest := make([]core.Edge, 0, n-1)
	var totalWeight float64
	for _, e := range edges {
		// Roots differ: the edge connects two components and joins the
		// forest. Roots equal: it would close a cycle, skip it.
		if ds.Union(e.From, e.To) {
			forest = append(forest, e)
			totalWeight += e.Weight
			if ds.Sets() == 1 {
				break
			}
		}
	}

	return forest, totalWeight, nil
}
