// Package core provides the fundamental in-memory Graph for reach.
//
// What
//
//   - A fixed-size undirected multigraph: the node set [0, nodeCount) is
//     chosen at construction and never grows or shrinks.
//   - Per-node adjacency sequences of (neighbor, weight) pairs, preserved in
//     insertion order for deterministic traversal and tie-breaking.
//   - Parallel edges and self-loops are allowed; weights default to 1.0 and
//     must be non-negative.
//   - The shared distance vocabulary: Unreachable (+Inf) marks nodes with no
//     path from a source, and IsUnreachable tests for it.
//
// Why
//
//	Dense integer ids make the adjacency relation a plain slice of slices —
//	no hashing, no pointer chasing — which is all the shortest-path engines
//	in bfs/ and dijkstra/ need. Nodes are never removed, so indices stay
//	stable for the lifetime of the graph.
//
// Concurrency
//
//	Graph has no internal locking. Build the edge set single-threaded, then
//	treat the graph as an immutable snapshot: any number of concurrent
//	readers (distance computations) are safe as long as no goroutine calls
//	AddEdge concurrently with a read.
//
// Usage
//
//	g, err := core.NewGraph(3)
//	if err != nil { ... }
//	_ = g.AddEdge(0, 1)                        // weight 1.0
//	_ = g.AddEdge(1, 2, core.WithWeight(2.5))  // explicit weight
package core
