// This file provides the mutation and query methods of Graph.
package core

import "fmt"

// AddEdge inserts an undirected edge between u and v.
// The weight defaults to DefaultEdgeWeight; override with WithWeight.
//
// The edge (v, w) is appended to u's adjacency sequence and (u, w) to v's,
// in that order. No deduplication is performed: inserting the same pair twice
// yields two parallel edges. Self-loops (u == v) are legal; the node then
// appears twice in its own sequence.
//
// Returns ErrNodeOutOfRange if either endpoint lies outside [0, nodeCount),
// or ErrNegativeWeight if the weight is below zero. On error the graph is
// left unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, opts ...EdgeOption) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: u=%d, want [0,%d)", ErrNodeOutOfRange, u, g.nodeCount)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: v=%d, want [0,%d)", ErrNodeOutOfRange, v, g.nodeCount)
	}

	cfg := edgeConfig{weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weight < 0 {
		return fmt.Errorf("%w: %g on edge %d–%d", ErrNegativeWeight, cfg.weight, u, v)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: cfg.weight})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: cfg.weight})
	g.edgeCount++

	return nil
}

// HasNode reports whether id is a valid node of the graph.
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < g.nodeCount
}

// NodeCount returns the fixed number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of undirected edges inserted so far.
// Parallel edges and self-loops each count once per AddEdge call.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree returns the length of id's adjacency sequence.
// A self-loop contributes two to its node's degree.
// Complexity: O(1)
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d, want [0,%d)", ErrNodeOutOfRange, id, g.nodeCount)
	}

	return len(g.adj[id]), nil
}

// Neighbors returns a copy of id's adjacency sequence in insertion order.
// The copy may be retained or mutated freely by the caller.
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d, want [0,%d)", ErrNodeOutOfRange, id, g.nodeCount)
	}

	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}
