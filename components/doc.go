// Package components implements breadth-first traversal and connected
// component analysis for core.Graph.
//
// # BFS — Breadth-First Search
//
// BFS explores the graph level by level from a start vertex. The frontier is
// a FIFO queue; neighbors are taken in adjacency insertion order; each vertex
// moves from undiscovered to discovered exactly once, the moment it is the
// traversal root or is first enqueued as a neighbor, and is never revisited.
//
// Steps:
//  1. Initialize:
//     - Mark start visited, depth=0, enqueue.
//     - Invoke OnEnqueue hook.
//  2. Loop until queue empty:
//     2.1 Dequeue an item (vertex, depth); invoke OnDequeue.
//     2.2 Visit the vertex: append to Result.Order; invoke OnVisit
//     (an OnVisit error aborts the run).
//     2.3 Enqueue undiscovered neighbors, subject to FilterNeighbor and
//     MaxDepth, recording parent and depth+1.
//
// # Component sweeps
//
// Summarize seeds a BFS from every still-undiscovered vertex in ascending id
// order and records one component size per seed. Largest, Count, and
// Connected are thin views of the same sweep:
//
//	sum(Summary.Sizes) == g.VertexCount()
//	Summary.Largest == g.VertexCount()  ⇔  the graph is fully connected
//
// Traversal state (the visited set, depths, parents) is owned by the call,
// sized to the vertex count and created fresh per invocation. The Graph's
// own mark and parent arrays are left untouched, so concurrent read-only
// runs over one Graph are safe.
//
// Complexity: O(V + E) time for a full sweep, O(V) auxiliary space.
// No failure modes beyond invalid input, option violations, cancellation
// via WithContext, and user hook errors.
package components
