// Package core defines the Graph container shared by every engine in reach:
// a fixed-size undirected multigraph over dense integer node ids.
//
// This file declares Edge, Graph, EdgeOption, the distance sentinel,
// the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNonPositiveCount - node count below 1 at construction.
//	ErrNodeOutOfRange   - node id outside [0, nodeCount).
//	ErrNegativeWeight   - edge weight below zero.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNonPositiveCount indicates a graph was requested with fewer than one node.
	ErrNonPositiveCount = errors.New("core: node count must be at least 1")

	// ErrNodeOutOfRange indicates a node id outside the graph's valid range.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	// Dijkstra's optimality argument requires non-negative weights, so the
	// graph rejects them at insertion time rather than letting a later
	// computation silently misbehave.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// DefaultEdgeWeight is the weight an edge receives when WithWeight is not supplied.
const DefaultEdgeWeight = 1.0

// Unreachable is the distance reported for nodes with no path from the source.
// +Inf is absorbing under addition and sorts after every finite distance, so
// arithmetic that accidentally touches the sentinel can never yield a finite
// wrong answer.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the Unreachable sentinel.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }

// Edge is one half of an undirected edge as seen from a node's adjacency
// sequence: the neighbor it leads to and the weight of the connection.
type Edge struct {
	// To is the neighbor node id.
	To int

	// Weight is the cost of the connection. Always ≥ 0.
	Weight float64
}

// EdgeOption configures a single edge at insertion time.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight float64
}

// WithWeight overrides the default edge weight of 1.0.
// Negative values are rejected by AddEdge with ErrNegativeWeight.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// Graph is a fixed-size undirected multigraph over node ids [0, nodeCount).
//
// The node set is fixed at construction; only edges are ever added. Insertion
// order within each node's adjacency sequence is preserved, which makes
// traversal order and tie-breaking deterministic. Parallel edges and
// self-loops are permitted.
//
// Graph carries no internal locking: build the edge set first, then treat it
// as a read-only snapshot. Concurrent distance computations over a finished
// graph are safe; concurrent AddEdge calls are not.
type Graph struct {
	nodeCount int
	edgeCount int

	// adj[u] is u's adjacency sequence, in insertion order.
	adj [][]Edge
}

// NewGraph creates a graph with nodeCount nodes and no edges.
// nodeCount must be at least 1, otherwise ErrNonPositiveCount is returned.
// Complexity: O(V)
func NewGraph(nodeCount int) (*Graph, error) {
	if nodeCount < 1 {
		return nil, ErrNonPositiveCount
	}

	return &Graph{
		nodeCount: nodeCount,
		adj:       make([][]Edge, nodeCount),
	}, nil
}
