package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvenik/graphden/mst"
)

// TestDisjointSet_Singletons verifies the freshly constructed partition.
func TestDisjointSet_Singletons(t *testing.T) {
	d := mst.NewDisjointSet(4)

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Sets())
	for v := 0; v < 4; v++ {
		assert.Equal(t, v, d.Find(v), "singleton %d must be its own root", v)
	}
	assert.False(t, d.SameSet(0, 1))
}

// TestDisjointSet_UnionFind covers merging, idempotence, and set counting.
func TestDisjointSet_UnionFind(t *testing.T) {
	d := mst.NewDisjointSet(6)

	require.True(t, d.Union(0, 1))
	require.True(t, d.Union(2, 3))
	assert.Equal(t, 4, d.Sets())
	assert.True(t, d.SameSet(0, 1))
	assert.False(t, d.SameSet(1, 2))

	// Merging two non-trivial sets.
	require.True(t, d.Union(1, 3))
	assert.True(t, d.SameSet(0, 2))
	assert.Equal(t, 3, d.Sets())

	// Union inside one set is a no-op.
	assert.False(t, d.Union(0, 3))
	assert.Equal(t, 3, d.Sets())
}

// TestDisjointSet_ChainFlattening unions a long chain in the worst
// insertion order and checks Find stays consistent — the iterative
// path-halving walk must terminate and agree for every element.
func TestDisjointSet_ChainFlattening(t *testing.T) {
	const n = 100000
	d := mst.NewDisjointSet(n)
	for v := 0; v < n-1; v++ {
		require.True(t, d.Union(v, v+1))
	}

	require.Equal(t, 1, d.Sets())
	root := d.Find(0)
	for v := 1; v < n; v++ {
		assert.Equal(t, root, d.Find(v))
	}
}

// TestDisjointSet_NegativePanics: negative universe is programmer error.
func TestDisjointSet_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { mst.NewDisjointSet(-1) })
}

// TestDisjointSet_Empty: the zero-size universe is legal and inert.
func TestDisjointSet_Empty(t *testing.T) {
	d := mst.NewDisjointSet(0)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Sets())
}
