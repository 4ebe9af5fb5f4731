// Package components: whole-graph sweeps built on the BFS walker.

package components

import "github.com/torvenik/graphden/core"

// Summarize performs one full BFS sweep over g: every vertex in ascending id
// order seeds a traversal if it has not been discovered by an earlier one.
// Each traversal contributes one entry to Summary.Sizes; the sizes always
// sum to g.VertexCount().
//
// Options apply to the whole sweep (one shared Options resolution); hooks
// fire per vertex exactly as they would for the covering single-source runs.
// Returns ErrGraphNil, ErrOptionViolation, a context error, or a hook error.
// Complexity: O(V + E).
func Summarize(g *core.Graph, opts ...Option) (*Summary, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	s := &Summary{Sizes: []int{}}
	for v := 0; v < g.VertexCount(); v++ {
		if w.visited[v] {
			continue
		}
		// v seeds a new component; count how many vertices this traversal
		// visits by watching Order grow.
		before := len(w.res.Order)
		w.enqueue(v, 0, Unreached)
		if err = w.loop(); err != nil {
			return nil, err
		}
		size := len(w.res.Order) - before

		s.Sizes = append(s.Sizes, size)
		s.Count++
		if size > s.Largest {
			s.Largest = size
		}
	}

	return s, nil
}

// Largest returns the size of the largest connected component of g:
// at most g.VertexCount(), and equal to it exactly when the graph is
// fully connected. The empty graph has largest component 0.
func Largest(g *core.Graph, opts ...Option) (int, error) {
	s, err := Summarize(g, opts...)
	if err != nil {
		return 0, err
	}

	return s.Largest, nil
}

// Count returns the number of connected components of g.
func Count(g *core.Graph, opts ...Option) (int, error) {
	s, err := Summarize(g, opts...)
	if err != nil {
		return 0, err
	}

	return s.Count, nil
}

// Connected reports whether every vertex of g is reachable from every other:
// a single traversal discovers the whole vertex set. The empty graph is
// connected by convention.
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	s, err := Summarize(g, opts...)
	if err != nil {
		return false, err
	}

	return s.Count <= 1, nil
}
