// SPDX-License-Identifier: MIT
// Package: graphden/builder
//
// random.go — seeded random graph generators.
//
// Canonical model: rejection sampling toward a target edge count. Each
// attempt draws an ordered pair (two Intn(n) calls, first draw = from,
// second = to), skips self-pairs and already-present edges, and otherwise
// inserts. The trial order is fixed, so outcomes are deterministic for a
// fixed seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/torvenik/graphden/core"
)

const (
	methodRandomGraph         = "RandomGraph"
	methodRandomWeightedGraph = "RandomWeightedGraph"
	minWeight                 = 1 // weighted draws land in [minWeight, maxWeight]
)

// RandomGraph samples an undirected simple graph with n vertices and exactly
// edgeCount edges, all of weight 1.
//
// Contract:
//   - n ≥ 0; n ≥ 2 when edgeCount > 0 (else ErrTooFewVertices).
//   - 0 ≤ edgeCount ≤ n(n-1)/2 (else ErrEdgeTargetInfeasible) — the original
//     rejection loop can never finish past the simple-graph maximum.
//   - An RNG is required whenever sampling happens, i.e. edgeCount > 0
//     (else ErrNeedRandSource).
//
// Determinism: identical (n, edgeCount, seed) produce bit-identical
// adjacency — same edge set, same insertion order.
// Complexity: expected O(edgeCount) draws while the graph stays sparse;
// rejection cost grows as the target nears the maximum.
func RandomGraph(n, edgeCount int, opts ...BuildOption) (*core.Graph, error) {
	cfg := newBuildConfig(opts...)
	if err := validateTarget(methodRandomGraph, n, edgeCount, cfg); err != nil {
		return nil, err
	}

	g := core.New(n)
	if err := sampleEdges(methodRandomGraph, g, edgeCount, cfg.rng, nil); err != nil {
		return nil, err
	}

	return g, nil
}

// RandomWeightedGraph samples like RandomGraph but attaches an integer
// weight drawn uniformly from [1, maxWeight] to each accepted edge.
// The weight is drawn after the pair is accepted, so the pair sequence for a
// given seed matches RandomGraph's.
//
// Additional contract: maxWeight ≥ 1 (else ErrBadWeightRange).
func RandomWeightedGraph(n, edgeCount, maxWeight int, opts ...BuildOption) (*core.Graph, error) {
	cfg := newBuildConfig(opts...)
	if maxWeight < minWeight {
		return nil, fmt.Errorf("%s: maxWeight=%d: %w", methodRandomWeightedGraph, maxWeight, ErrBadWeightRange)
	}
	if err := validateTarget(methodRandomWeightedGraph, n, edgeCount, cfg); err != nil {
		return nil, err
	}

	g := core.New(n)
	weightFn := func(rng *rand.Rand) float64 {
		return float64(minWeight + rng.Intn(maxWeight))
	}
	if err := sampleEdges(methodRandomWeightedGraph, g, edgeCount, cfg.rng, weightFn); err != nil {
		return nil, err
	}

	return g, nil
}

// validateTarget enforces the shared parameter domain of both generators.
func validateTarget(method string, n, edgeCount int, cfg buildConfig) error {
	if n < 0 || (edgeCount > 0 && n < 2) {
		return fmt.Errorf("%s: n=%d with edgeCount=%d: %w", method, n, edgeCount, ErrTooFewVertices)
	}
	if maxEdges := n * (n - 1) / 2; edgeCount < 0 || edgeCount > maxEdges {
		return fmt.Errorf("%s: edgeCount=%d not in [0,%d]: %w", method, edgeCount, maxEdges, ErrEdgeTargetInfeasible)
	}
	if cfg.rng == nil && edgeCount > 0 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleEdges runs the rejection loop until g holds edgeCount edges.
// weightFn nil means unit weights.
func sampleEdges(method string, g *core.Graph, edgeCount int, rng *rand.Rand, weightFn func(*rand.Rand) float64) error {
	n := g.VertexCount()
	for g.EdgeCount() < edgeCount {
		from := rng.Intn(n)
		to := rng.Intn(n)
		// Self-pairs and occupied pairs burn a draw and retry; HasEdge is
		// the soft existence check, it never fails on these ids.
		if from == to || g.HasEdge(from, to) {
			continue
		}

		var opts []core.EdgeOption
		if weightFn != nil {
			opts = append(opts, core.WithWeight(weightFn(rng)))
		}
		if err := g.AddEdge(from, to, opts...); err != nil {
			// Unreachable after the guards above; surfaced for the contract.
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, from, to, err)
		}
	}

	return nil
}
