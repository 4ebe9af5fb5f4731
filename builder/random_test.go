package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvenik/graphden/builder"
	"github.com/torvenik/graphden/core"
)

// TestRandomGraph_TargetReached verifies the generator hits the exact edge
// count with legal simple-graph structure.
func TestRandomGraph_TargetReached(t *testing.T) {
	g, err := builder.RandomGraph(100, 250, builder.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 100, g.VertexCount())
	assert.Equal(t, 250, g.EdgeCount())
	assert.Len(t, g.AllEdges(), 250)
	for _, e := range g.AllEdges() {
		assert.NotEqual(t, e.From, e.To, "self-loop sampled")
		assert.Equal(t, core.DefaultEdgeWeight, e.Weight)
	}
}

// TestRandomGraph_Determinism: same arguments and seed twice → identical
// edge set and insertion order.
func TestRandomGraph_Determinism(t *testing.T) {
	a, err := builder.RandomGraph(200, 400, builder.WithSeed(17))
	require.NoError(t, err)
	b, err := builder.RandomGraph(200, 400, builder.WithSeed(17))
	require.NoError(t, err)

	assert.Equal(t, a.AllEdges(), b.AllEdges())
	// Insertion order is part of the contract: compare per-vertex adjacency.
	for v := 0; v < a.VertexCount(); v++ {
		nbrsA, _ := a.ConnectedVertices(v)
		nbrsB, _ := b.ConnectedVertices(v)
		assert.Equal(t, nbrsA, nbrsB, "vertex %d adjacency order", v)
	}

	// A different seed diverges.
	c, err := builder.RandomGraph(200, 400, builder.WithSeed(18))
	require.NoError(t, err)
	assert.NotEqual(t, a.AllEdges(), c.AllEdges())
}

// TestRandomWeightedGraph_WeightRange: weights land in [1, maxWeight] and
// the structure remains deterministic per seed.
func TestRandomWeightedGraph_WeightRange(t *testing.T) {
	const maxWeight = 10
	g, err := builder.RandomWeightedGraph(50, 120, maxWeight, builder.WithSeed(2))
	require.NoError(t, err)

	assert.Equal(t, 120, g.EdgeCount())
	for _, e := range g.AllEdges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, float64(maxWeight))
		assert.Equal(t, e.Weight, float64(int(e.Weight)), "weights are integral")
	}

	h, err := builder.RandomWeightedGraph(50, 120, maxWeight, builder.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, g.AllEdges(), h.AllEdges())
}

// TestValidation covers the parameter-domain sentinels.
func TestValidation(t *testing.T) {
	// Negative n.
	_, err := builder.RandomGraph(-1, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	// One vertex cannot host an edge.
	_, err = builder.RandomGraph(1, 1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	// Above the simple-graph maximum 4·3/2 = 6.
	_, err = builder.RandomGraph(4, 7, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrEdgeTargetInfeasible)

	// Negative target.
	_, err = builder.RandomGraph(4, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrEdgeTargetInfeasible)

	// Missing RNG for a stochastic run.
	_, err = builder.RandomGraph(4, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// Bad weight range.
	_, err = builder.RandomWeightedGraph(4, 2, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadWeightRange)
}

// TestZeroTargets: degenerate but legal requests need no RNG.
func TestZeroTargets(t *testing.T) {
	g, err := builder.RandomGraph(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())

	g, err = builder.RandomGraph(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestRandomGraph_Saturation fills the complete graph: every pair present.
func TestRandomGraph_Saturation(t *testing.T) {
	const n = 8
	g, err := builder.RandomGraph(n, n*(n-1)/2, builder.WithSeed(3))
	require.NoError(t, err)

	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			assert.True(t, g.HasEdge(u, v), "missing edge (%d,%d)", u, v)
		}
	}
}

// TestWithRand shares one caller-owned source across two generations;
// consuming the stream means the second generation differs from the first.
func TestWithRand(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a, err := builder.RandomGraph(30, 40, builder.WithRand(r))
	require.NoError(t, err)
	b, err := builder.RandomGraph(30, 40, builder.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, a.AllEdges(), b.AllEdges())
}

// TestWithRand_NilPanics: nil RNG is programmer error at option time.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
