// Package reach computes closeness-centrality ("influence") scores for
// nodes of undirected graphs, both unweighted and non-negatively weighted.
//
// 🚀 What is reach?
//
//	A small, focused toolkit built from four pieces:
//		• core/      — fixed-size undirected multigraph over dense integer node ids
//		• bfs/       — hop-count shortest paths for unweighted graphs, O(V+E)
//		• dijkstra/  — weighted shortest paths via a lazy-decrease-key min-heap, O((V+E) log V)
//		• closeness/ — the influence score: (N-1) / Σ distances to every other node
//
// ✨ Why reach?
//
//   - Deterministic: adjacency insertion order is preserved, so traversal
//     order and tie-breaking are fully reproducible
//   - Honest about disconnection: a node that cannot reach every peer has
//     zero influence, and unreachable distances carry an explicit sentinel
//   - Safe to parallelize externally: once edge insertion is finished, every
//     distance computation is a pure read of the graph
//
// Quick ASCII example:
//
//	    0───1───2
//
//	a path of three nodes; BFS from 0 yields distances [0 1 2],
//	and node 0 scores (3-1)/(1+2) ≈ 0.6667.
//
// The reach binary under cmd/reach wraps the library in a CLI with two
// built-in demo datasets, an edge-list ranking command, and an interactive
// menu. See each subpackage's doc.go for algorithmic detail.
package reach
