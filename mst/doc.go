// Package mst computes minimum spanning trees — and, for disconnected
// inputs, minimum spanning forests — over an undirected core.Graph.
//
// # What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree
//     is a subset T ⊆ E that connects all of V without cycles at minimum
//     total weight. When G is disconnected no such T exists; the natural
//     generalization is the minimum spanning forest, one MST per component.
//   - Both algorithms here treat disconnection gracefully rather than as an
//     error: Kruskal returns the whole forest, Prim returns the tree of its
//     root's component. Callers that require a full spanning tree can check
//     len(edges) == VertexCount()-1, or ask the components package first.
//
// # Algorithms
//
//   - Kruskal(g) — sort all edges by ascending weight (stable, so ties keep
//     AllEdges emission order), then take each edge whose endpoints lie in
//     different DisjointSet components. O(E log E + α(V)·E) ≈ O(E log V).
//   - Prim(g, root) — grow a single tree from root, keeping a min-heap of
//     frontier edges and always taking the lightest edge that reaches a new
//     vertex. O(E log V).
//
// For a connected graph the two produce the same total weight; under equal
// weight ties they may select different (equally minimal) edge sets.
//
// # DisjointSet
//
// The union-find structure backing Kruskal is exported: Find is iterative
// with path halving and Union is by rank, giving near-constant amortized
// operations and bounded stack depth at any input size. It is reusable for
// any partition-refinement task over dense integer ids.
//
// # Errors
//
//   - ErrGraphNil        — nil graph pointer.
//   - ErrDirected        — spanning trees are defined on undirected graphs.
//   - ErrRootOutOfRange  — Prim's root outside [0, VertexCount).
//   - ErrUnknownMethod   — Compute dispatch on an unknown method name.
//
// Neither algorithm mutates the Graph; each run owns only its local state.
package mst
