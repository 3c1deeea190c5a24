// Package dataset supplies the named demo graphs shipped with the reach CLI
// and parses user-supplied edge lists, mapping human-readable node names to
// the dense integer ids the core graph works with.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkravets/reach/core"
)

// Sentinel errors for dataset construction and parsing.
var (
	// ErrUnknownNode indicates an edge referencing a name absent from Names.
	ErrUnknownNode = errors.New("dataset: unknown node name")

	// ErrMalformedLine indicates an edge-list line that is not "u v [w]".
	ErrMalformedLine = errors.New("dataset: malformed edge line")

	// ErrEmpty indicates an edge list with no nodes at all.
	ErrEmpty = errors.New("dataset: no nodes found")
)

// Edge is one named undirected edge of a dataset.
type Edge struct {
	U, V   string
	Weight float64
}

// Dataset is a named graph: an ordered node-name list, a weighted flag
// selecting the distance engine, and the edge set. Node ids are the
// positions in Names.
type Dataset struct {
	Name     string
	Names    []string
	Weighted bool
	Edges    []Edge

	index map[string]int // lazily built by Index
}

// Social returns the built-in unweighted friendship graph. Erin bridges the
// two clusters, which makes her the most influential member.
func Social() *Dataset {
	return &Dataset{
		Name:  "social",
		Names: []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"},
		Edges: []Edge{
			{U: "Alice", V: "Bob", Weight: 1},
			{U: "Alice", V: "Carol", Weight: 1},
			{U: "Bob", V: "Carol", Weight: 1},
			{U: "Bob", V: "Erin", Weight: 1},
			{U: "Carol", V: "Erin", Weight: 1},
			{U: "Erin", V: "Dave", Weight: 1},
			{U: "Erin", V: "Frank", Weight: 1},
		},
	}
}

// Routes returns the built-in weighted route map over lettered stations.
func Routes() *Dataset {
	return &Dataset{
		Name:     "routes",
		Names:    []string{"A", "B", "C", "D", "E", "F"},
		Weighted: true,
		Edges: []Edge{
			{U: "A", V: "B", Weight: 4},
			{U: "A", V: "C", Weight: 2},
			{U: "B", V: "C", Weight: 1},
			{U: "B", V: "D", Weight: 5},
			{U: "C", V: "D", Weight: 8},
			{U: "C", V: "E", Weight: 10},
			{U: "D", V: "E", Weight: 2},
			{U: "D", V: "F", Weight: 6},
			{U: "E", V: "F", Weight: 3},
		},
	}
}

// Index returns the dense id of a node name.
func (d *Dataset) Index(name string) (int, bool) {
	if d.index == nil {
		d.index = make(map[string]int, len(d.Names))
		for i, n := range d.Names {
			d.index[n] = i
		}
	}
	id, ok := d.index[name]

	return id, ok
}

// Build constructs the core.Graph for the dataset.
// Returns ErrUnknownNode if an edge references a name absent from Names.
func (d *Dataset) Build() (*core.Graph, error) {
	g, err := core.NewGraph(len(d.Names))
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
	}

	for _, e := range d.Edges {
		u, ok := d.Index(e.U)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.U)
		}
		v, ok := d.Index(e.V)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, e.V)
		}
		if err := g.AddEdge(u, v, core.WithWeight(e.Weight)); err != nil {
			return nil, fmt.Errorf("dataset %q: edge %s–%s: %w", d.Name, e.U, e.V, err)
		}
	}

	return g, nil
}

// ParseEdgeList reads a whitespace-separated edge list:
//
//	# comment
//	alice bob
//	bob carol 2.5
//
// Two fields describe an unweighted edge (weight 1.0), three fields a
// weighted one. Node names are assigned dense ids in first-appearance order.
// The dataset is marked Weighted if any line carries an explicit weight.
func ParseEdgeList(name string, r io.Reader) (*Dataset, error) {
	d := &Dataset{Name: name, index: make(map[string]int)}

	intern := func(node string) {
		if _, ok := d.index[node]; !ok {
			d.index[node] = len(d.Names)
			d.Names = append(d.Names, node)
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}

		e := Edge{U: fields[0], V: fields[1], Weight: core.DefaultEdgeWeight}
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrMalformedLine, lineNo, fields[2])
			}
			e.Weight = w
			d.Weighted = true
		}

		intern(e.U)
		intern(e.V)
		d.Edges = append(d.Edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	if len(d.Names) == 0 {
		return nil, ErrEmpty
	}

	return d, nil
}
