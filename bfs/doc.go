// Package bfs computes unweighted shortest paths over a core.Graph.
//
// What
//
//   - Explores nodes in non-decreasing hop distance from a source node.
//   - Returns a Result containing:
//   - Dist: distance (edge count) per node, core.Unreachable where no path exists
//   - Order: visit sequence
//   - Parent: predecessor in the BFS tree (-1 for the source and unreached nodes)
//   - Supports a per-visit hook (WithOnVisit) and a depth cap (WithMaxDepth).
//   - Ignores edge weights: a graph built with arbitrary weights is traversed
//     purely by hop count. Use package dijkstra when weights matter.
//
// Determinism
//
//	core.Neighbors returns each adjacency sequence in insertion order and BFS
//	enqueues neighbors in that order, so the visit sequence and parent links
//	are fully reproducible for a given construction sequence. Insertion order
//	only affects enqueue order among equidistant nodes, never distances.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, distance vector, and parent links
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrNilGraph, ErrSourceOutOfRange, or ErrOptionViolation
//	}
//	fmt.Println(res.Dist)
//
//	// Only the distance vector:
//	dist, err := bfs.Distances(g, 0)
package bfs
