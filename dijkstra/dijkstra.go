// Package dijkstra implements Dijkstra's shortest-path algorithm on
// non-negatively weighted graphs.
//
// Nodes are settled in order of increasing distance using a min-heap priority
// queue with the lazy-decrease-key strategy: an improved distance pushes a
// fresh heap entry, and stale entries are skipped on extraction. The
// strict-less-than relaxation guard means a stale extraction can never
// produce an incorrect update, only wasted work.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/mkravets/reach/core"
)

// Dijkstra computes minimum path costs from source to every node of g.
//
// Every reachable node receives its true shortest-path distance under
// non-negative weights in Result.Dist; unreachable nodes keep
// core.Unreachable. Relaxation follows adjacency insertion order, so
// tie-breaking among equal-cost paths is deterministic.
//
// Returns ErrNilGraph or ErrSourceOutOfRange for invalid input, or
// ErrOptionViolation for bad options.
//
// Complexity: O((V + E) log V) time amortized, with a constant-factor
// overhead from unpurged stale heap entries; O(V + E) space.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
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
	r := &runner{
		g:       g,
		opts:    o,
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &Result{
			Dist:   make([]float64, n),
			Parent: make([]int, n),
		},
	}

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Distances runs Dijkstra and returns only the distance vector.
func Distances(g *core.Graph, source int) ([]float64, error) {
	res, err := Dijkstra(g, source)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only input graph
	opts    Options
	settled []bool // settled[v]: dist[v] is finalized
	pq      nodePQ // min-heap with lazy stale entries
	res     *Result
}

// init sets the sentinel distances, seeds the source at zero, and pushes it
// onto the heap.
func (r *runner) init(source int) {
	for i := range r.res.Dist {
		r.res.Dist[i] = core.Unreachable
		r.res.Parent[i] = -1
	}
	r.res.Dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance entry and relaxes its
// edges, until the heap is exhausted.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue // stale lazy-decrease-key entry
		}
		r.settled[item.id] = true
		r.opts.OnSettle(item.id, item.dist)

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax walks u's adjacency sequence and attempts to improve each neighbor's
// tentative distance. Assumes dist[u] is finalized.
func (r *runner) relax(u int) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		// u came off the heap, so this cannot happen for a well-formed graph.
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var candidate float64
	for _, e := range nbrs {
		// core.AddEdge already rejects negative weights; re-check anyway
		// since a negative edge silently breaks the optimality argument.
		if e.Weight < 0 {
			return fmt.Errorf("%w: %g on edge %d–%d", ErrNegativeWeight, e.Weight, u, e.To)
		}

		candidate = r.res.Dist[u] + e.Weight
		// Strict less-than: equal-cost rediscoveries push nothing.
		if candidate >= r.res.Dist[e.To] {
			continue
		}

		r.res.Dist[e.To] = candidate
		r.res.Parent[e.To] = u
		// Lazy decrease-key: push a fresh entry, leave the stale one behind.
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}

	return nil
}

// nodeItem is one heap entry: a node and its tentative distance at push time.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
