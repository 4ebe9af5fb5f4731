// Package builder generates random core.Graph fixtures deterministically.
//
// Two generators share one sampling model:
//
//   - RandomGraph(n, edgeCount, opts...) — undirected simple graph with
//     exactly edgeCount unit-weight edges.
//   - RandomWeightedGraph(n, edgeCount, maxWeight, opts...) — the same, with
//     integer weights drawn uniformly from [1, maxWeight].
//
// Sampling is rejection-based: draw an ordered vertex pair, skip self-pairs
// and pairs already connected, insert otherwise, repeat until the target
// edge count is reached. Pair draws come first and weight draws second, in a
// fixed order, so a fixed seed reproduces the exact adjacency structure —
// edge set and insertion order — every time. That makes seeded graphs usable
// as golden fixtures across test runs and machines.
//
// Randomness is always explicit: pass WithSeed(seed) (or WithRand for a
// caller-owned source); a generator invoked without one fails with
// ErrNeedRandSource rather than falling back to a hidden global.
//
// Parameter domains are validated up front (ErrTooFewVertices,
// ErrEdgeTargetInfeasible, ErrBadWeightRange): a target above the
// simple-graph maximum n(n-1)/2 would leave the rejection loop spinning
// forever, so it is an error, not a hang.
package builder
