// Package core: per-vertex mark and parent scratch state.
//
// Marks and parents are not interpreted by the Graph itself; they exist for
// algorithms that need per-vertex bookkeeping anchored to the graph (the
// three-state traversal mark, the disjoint-set parent forest). The only
// contract the Graph enforces is vertex id range validation. One algorithm
// run owns these arrays for its duration and must reset them before use
// (MarkAll, ClearParents).

package core

import "fmt"

// Mark assigns mark value m to vertex v.
// Returns ErrVertexRange if v is out of range.
func (g *Graph) Mark(v int, m int64) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.mu.Lock()
	g.marks[v] = m
	g.mu.Unlock()

	return nil
}

// MarkOf returns the mark value of vertex v.
// Returns ErrVertexRange if v is out of range.
func (g *Graph) MarkOf(v int) (int64, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.marks[v], nil
}

// MarkAll assigns mark value m to every vertex. Complexity: O(V).
func (g *Graph) MarkAll(m int64) {
	g.mu.Lock()
	for i := range g.marks {
		g.marks[i] = m
	}
	g.mu.Unlock()
}

// SetParent records parent as the parent of vertex v.
// parent must be NoParent or a legal vertex id; v must be in range.
// Returns ErrVertexRange otherwise.
func (g *Graph) SetParent(v, parent int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if parent != NoParent && !g.validVertex(parent) {
		return fmt.Errorf("%w: parent %d", ErrVertexRange, parent)
	}
	g.mu.Lock()
	g.parents[v] = parent
	g.mu.Unlock()

	return nil
}

// ParentOf returns the parent of vertex v, or NoParent if it has none.
// Returns ErrVertexRange if v is out of range.
func (g *Graph) ParentOf(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return NoParent, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.parents[v], nil
}

// ClearParents resets every vertex to NoParent. Complexity: O(V).
func (g *Graph) ClearParents() {
	g.mu.Lock()
	for i := range g.parents {
		g.parents[i] = NoParent
	}
	g.mu.Unlock()
}
