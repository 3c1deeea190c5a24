// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in non-decreasing hop distance from a source node,
// with an optional visit hook and depth limiting.
package bfs

import (
	"fmt"

	"github.com/mkravets/reach/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options.
//
// Every node reachable from source receives its true hop-count shortest
// distance in Result.Dist; unreachable nodes keep core.Unreachable. Neighbor
// expansion follows adjacency insertion order, so the visit sequence is
// deterministic. Edge weights are ignored entirely.
//
// Returns ErrNilGraph or ErrSourceOutOfRange for invalid input, or
// ErrOptionViolation for bad options.
//
// Complexity: O(V + E) time, O(V) extra space.
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d, want [0,%d)", ErrSourceOutOfRange, source, g.NodeCount())
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Dist:   make([]float64, n),
			Order:  make([]int, 0, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Dist {
		w.res.Dist[i] = core.Unreachable
		w.res.Parent[i] = -1
	}

	// Seed the queue with the source at distance zero.
	w.res.Dist[source] = 0
	w.queue = append(w.queue, queueItem{id: source, depth: 0})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Distances runs BFS and returns only the distance vector.
func Distances(g *core.Graph, source int) ([]float64, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// loop processes the FIFO queue until empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		w.opts.OnVisit(item.id, item.depth)

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks item's adjacency sequence in insertion order and
// enqueues every neighbor whose distance is still the sentinel.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		// item.id came off the queue, so this cannot happen for a well-formed graph.
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, e := range nbrs {
		if !core.IsUnreachable(w.res.Dist[e.To]) {
			continue // already discovered at an equal or smaller depth
		}
		w.res.Dist[e.To] = float64(next)
		w.res.Parent[e.To] = item.id
		w.queue = append(w.queue, queueItem{id: e.To, depth: next})
	}

	return nil
}
