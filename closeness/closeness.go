// Package closeness reduces a distance vector to a closeness-centrality
// ("influence") score and ranks whole graphs.
package closeness

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mkravets/reach/bfs"
	"github.com/mkravets/reach/core"
	"github.com/mkravets/reach/dijkstra"
)

// Sentinel errors for score computation.
var (
	// ErrEmptyVector indicates an empty distance vector was supplied.
	ErrEmptyVector = errors.New("closeness: empty distance vector")

	// ErrTargetOutOfRange indicates a target id outside the vector's range.
	ErrTargetOutOfRange = errors.New("closeness: target node out of range")

	// ErrSingleNode indicates a single-node graph, where the score formula
	// divides by an empty distance sum. The boundary is surfaced as an
	// explicit error rather than an arbitrary convention.
	ErrSingleNode = errors.New("closeness: influence undefined for a single-node graph")

	// ErrNilGraph indicates a nil *core.Graph was passed to Rank.
	ErrNilGraph = errors.New("closeness: graph is nil")
)

// Score reduces a distance vector to the influence of its source node.
//
// dist must be an engine output whose source was target: one distance per
// node of the graph, core.Unreachable where no path exists. The score is
//
//	(N-1) / Σ dist[i] over all i ≠ target
//
// the closeness-centrality formula: the number of other nodes divided by the
// total distance to reach them. Higher values mean the target is, on average,
// closer to everyone else.
//
// If any other node is unreachable from target, the score is exactly 0: a
// disconnected node has no influence, regardless of how many peers it does
// reach. With zero-weight edges the distance sum can itself be zero, in
// which case the formula yields +Inf.
//
// Returns ErrEmptyVector, ErrTargetOutOfRange, or ErrSingleNode for
// degenerate input.
func Score(dist []float64, target int) (float64, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyVector
	}
	if target < 0 || target >= n {
		return 0, fmt.Errorf("%w: %d, want [0,%d)", ErrTargetOutOfRange, target, n)
	}
	if n == 1 {
		return 0, ErrSingleNode
	}

	var sum float64
	for i, d := range dist {
		if i == target {
			continue // self-distance is always 0 and excluded from the sum
		}
		if core.IsUnreachable(d) {
			return 0, nil
		}
		sum += d
	}

	return float64(n-1) / sum, nil
}

// NodeScore pairs a node id with its influence score.
type NodeScore struct {
	Node  int     `json:"node"`
	Score float64 `json:"score"`
}

// Rank computes the influence score of every node in g and returns the
// scores sorted descending, ties broken by ascending node id.
//
// The weighted flag selects the distance engine: Dijkstra path costs when
// true, BFS hop counts when false. Each node's vector is computed
// independently, so g must not be mutated while Rank runs.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
func Rank(g *core.Graph, weighted bool) ([]NodeScore, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	engine := bfs.Distances
	if weighted {
		engine = dijkstra.Distances
	}

	n := g.NodeCount()
	out := make([]NodeScore, 0, n)
	for id := 0; id < n; id++ {
		dist, err := engine(g, id)
		if err != nil {
			return nil, err
		}
		score, err := Score(dist, id)
		if err != nil {
			return nil, err
		}
		out = append(out, NodeScore{Node: id, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Node < out[j].Node
	})

	return out, nil
}
