// SPDX-License-Identifier: MIT
// Package: graphden/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed; callers branch with
//     errors.Is.
//   - Generators attach parameter context via fmt.Errorf and %w.
//   - Option constructors validate eagerly and panic on meaningless inputs
//     (programmer error); generators themselves never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates the vertex count cannot host the request:
// negative n, or n < 2 when at least one edge was asked for.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrEdgeTargetInfeasible indicates the requested edge count is negative or
// exceeds the simple-graph maximum n(n-1)/2 for an undirected graph.
// Sampling toward an infeasible target would never terminate, so it is
// rejected up front.
var ErrEdgeTargetInfeasible = errors.New("builder: edge target infeasible")

// ErrBadWeightRange indicates maxWeight < 1 for the weighted generator.
var ErrBadWeightRange = errors.New("builder: max weight must be at least 1")

// ErrNeedRandSource indicates a stochastic generator was invoked without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
