// Package dijkstra computes single-source shortest paths on graphs with
// non-negative edge weights.
//
// What
//
//   - Settles nodes in order of increasing distance from a source node.
//   - Returns a Result containing:
//   - Dist: minimum path cost per node, core.Unreachable where no path exists
//   - Parent: predecessor on a shortest path (-1 for the source and unreached nodes)
//   - Supports a settle hook (WithOnSettle) fired once per finalized node.
//
// Priority queue
//
//	The implementation uses a lazy-decrease-key binary heap (container/heap):
//	when relaxation improves a node's distance, a fresh (node, distance) entry
//	is pushed and the outdated entry simply stays in the heap. Stale entries
//	are recognized on extraction via the settled set and skipped. Because the
//	relaxation guard is strictly less-than, a stale extraction can never
//	overwrite a finalized smaller distance — the cost is wasted heap work,
//	bounded by O(E) extra entries. An eagerly-decreasing indexed heap would
//	be the alternative; only the constant factors differ.
//
// Weights
//
//	core.Graph rejects negative weights at AddEdge time, which is the
//	precondition Dijkstra's optimality argument rests on. Relaxation still
//	re-checks each weight defensively and fails with ErrNegativeWeight if a
//	corrupted graph slips through. Zero-weight edges are legal.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O((V + E) log V) amortized
//   - Memory: O(V + E) worst case for the heap under lazy decrease-key
//
// Usage
//
//	res, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    // ErrNilGraph, ErrSourceOutOfRange, or ErrOptionViolation
//	}
//	fmt.Println(res.Dist)
//	path, err := res.PathTo(5)
package dijkstra
