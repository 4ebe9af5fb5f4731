// Package mst: Prim's algorithm over an undirected core.Graph,
// growing the tree from a root vertex with a min-heap.

package mst

import (
	"container/heap"

	"github.com/torvenik/graphden/core"
)

// Prim computes the minimum spanning tree of the component containing root
// by growing outwards from root, always taking the lightest edge that
// reaches a new vertex.
//
// Mirroring Kruskal's forest semantics, a disconnected graph is not an
// error: the result spans root's component only, and vertices outside it
// contribute nothing. For a connected graph Prim and Kruskal agree on total
// weight (the chosen edges may differ under weight ties).
//
// Steps:
//  1. Validate: graph != nil, !graph.Directed(), root in range.
//  2. Mark root visited; push its incident edges onto a min-heap.
//  3. Pop the lightest edge (u→v); if v is visited, skip (cycle).
//     Otherwise accept the edge, mark v, and push v's incident edges whose
//     far endpoint is still unvisited.
//  4. Stop when the heap drains.
//
// Errors: ErrGraphNil, ErrDirected, ErrRootOutOfRange.
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrGraphNil
	}
	if graph.Directed() {
		return nil, 0, ErrDirected
	}
	if root < 0 || root >= graph.VertexCount() {
		return nil, 0, ErrRootOutOfRange
	}

	n := graph.VertexCount()
	visited := make([]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	// Seed the frontier with root's incident edges. Ids held by the walker
	// are always in range, so EdgeList errors cannot occur here.
	visited[root] = true
	seed, _ := graph.EdgeList(root)
	for _, e := range seed {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		v := e.To
		// Already inside the tree: taking this edge would close a cycle.
		if visited[v] {
			continue
		}
		visited[v] = true
		tree = append(tree, e)
		totalWeight += e.Weight

		next, _ := graph.EdgeList(v)
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	return tree, totalWeight, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge values,
// ordered by Weight.
type edgePQ []core.Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element after heap adjustments;
// called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
