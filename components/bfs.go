// bfs.go implements the breadth-first walker: visit order, unweighted
// distances, and parent links, with optional hooks, depth limiting, and
// neighbor filtering. Traversals keep their own visited state and never
// touch the Graph's mark or parent arrays.

package components

import (
	"fmt"

	"github.com/torvenik/graphden/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state for one source (or one sweep).
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context's error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	// Seed queue with the start vertex and drain.
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// newWalker validates inputs, resolves options, and allocates per-run state
// sized to the vertex count.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	return w, nil
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the FIFO queue. A vertex is enqueued at most once; this is
// the moment it moves from undiscovered to discovered.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("components: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors walks item's adjacency list in insertion order, applies
// filtering and MaxDepth, and enqueues each undiscovered neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	// Ids produced by the walker are always in range, so the error branch is
	// unreachable; it is kept to honor the Graph contract.
	neighbors, err := w.graph.ConnectedVertices(item.v)
	if err != nil {
		return fmt.Errorf("components: neighbors of %d: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
