// Package dijkstra defines error sentinels, options, and the Result type
// for Dijkstra's shortest-path algorithm over a core.Graph.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/mkravets/reach/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source id outside the graph's node range.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates a negative edge weight was encountered
	// during relaxation. core.Graph rejects negative weights at insertion,
	// so seeing this error means the graph was corrupted.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Option configures Dijkstra behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Dijkstra run.
type Options struct {
	// OnSettle is called once per node when its distance is finalized,
	// in non-decreasing distance order.
	OnSettle func(id int, dist float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(int, float64) {},
	}
}

// WithOnSettle registers a callback invoked when a node's distance becomes final.
func WithOnSettle(fn func(id int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result holds the outcome of a Dijkstra computation:
//   - Dist: minimum path cost per node; core.Unreachable where no path exists.
//   - Parent: predecessor on a shortest path, -1 for the source and unreached nodes.
type Result struct {
	Dist   []float64
	Parent []int
}

// PathTo reconstructs a minimum-cost path from the source to dest.
// Returns an error if dest is out of range or was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("dijkstra: destination %d out of range [0,%d)", dest, len(r.Dist))
	}
	if core.IsUnreachable(r.Dist[dest]) {
		return nil, fmt.Errorf("dijkstra: no path to %d", dest)
	}

	path := []int{}
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
