// Package closeness derives influence scores from distance vectors.
//
// The score of a node is its closeness centrality:
//
//	(N-1) / Σ distances to every other node
//
// computed from the output of either shortest-path engine (bfs hop counts or
// dijkstra path costs). A node that cannot reach every peer scores exactly 0
// by policy — partial reachability does not earn partial influence.
//
// Two degenerate inputs are surfaced as errors instead of guessed values:
// an empty vector (ErrEmptyVector) and a single-node graph (ErrSingleNode),
// where the formula would divide by an empty sum.
//
// Rank runs the appropriate engine once per node and orders the whole graph
// by descending score. It does not parallelize the per-node computations;
// callers may, since a finished core.Graph is safe for concurrent reads.
package closeness
