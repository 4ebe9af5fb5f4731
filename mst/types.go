// Package mst defines configuration options and sentinel errors for minimum
// spanning tree (and forest) computation. It supports selecting between
// Kruskal and Prim via Options.
package mst

import (
	"errors"

	"github.com/torvenik/graphden/core"
)

// ErrGraphNil indicates a nil graph pointer was passed.
var ErrGraphNil = errors.New("mst: graph is nil")

// ErrDirected indicates the graph is directed. Spanning trees are defined
// over undirected graphs only.
var ErrDirected = errors.New("mst: directed graphs not supported")

// ErrRootOutOfRange indicates Prim's root vertex id is not in
// [0, VertexCount).
var ErrRootOutOfRange = errors.New("mst: root vertex out of range")

// ErrUnknownMethod indicates Compute was asked for a method it does not know.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Options configures which algorithm Compute runs and, for Prim, the
// starting vertex. Use DefaultOptions for the Kruskal default.
//
// Fields:
//
//	Method string — MethodKruskal or MethodPrim.
//	Root   int    — start vertex id for Prim; ignored by Kruskal.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal from vertex 0.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the configured algorithm.
//
//	– MethodKruskal: Kruskal(graph) — whole-graph spanning forest.
//	– MethodPrim:    Prim(graph, opts.Root) — root's component only.
//	– otherwise:     ErrUnknownMethod.
//
// Returns the chosen edges, their total weight, and any validation error.
// Optional scaffolding: Kruskal and Prim can still be called directly.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
