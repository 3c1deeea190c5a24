// Package bfs provides tunable options, error definitions, and the Result
// type for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/mkravets/reach/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source id lies outside
	// the graph's node range.
	ErrSourceOutOfRange = errors.New("bfs: source node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// OnVisit is called once per visited node with its hop distance
	// from the source, in visit order.
	OnVisit func(id, depth int)

	// MaxDepth, if > 0, stops exploring beyond this hop distance.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(int, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback invoked once per visited node.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search past the given hop distance.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Dist: hop-count distance per node; core.Unreachable where no path exists.
//   - Order: nodes in visit sequence.
//   - Parent: predecessor in the BFS tree, -1 for the source and unreached nodes.
type Result struct {
	Dist   []float64
	Order  []int
	Parent []int
}

// PathTo reconstructs the hop-minimal path from the source to dest.
// Returns an error if dest is out of range or was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("bfs: destination %d out of range [0,%d)", dest, len(r.Dist))
	}
	if core.IsUnreachable(r.Dist[dest]) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}

	// build reversed path, then flip
	path := []int{}
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
