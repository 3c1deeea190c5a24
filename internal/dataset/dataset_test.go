package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/reach/closeness"
	"github.com/mkravets/reach/core"
	"github.com/mkravets/reach/internal/dataset"
)

func TestSocial_BuildsConnectedGraph(t *testing.T) {
	ds := dataset.Social()
	assert.False(t, ds.Weighted)

	g, err := ds.Build()
	require.NoError(t, err)
	assert.Equal(t, len(ds.Names), g.NodeCount())
	assert.Equal(t, len(ds.Edges), g.EdgeCount())

	// Everyone reaches everyone: no zero scores in the ranking.
	ranking, err := closeness.Rank(g, ds.Weighted)
	require.NoError(t, err)
	for _, ns := range ranking {
		assert.Greater(t, ns.Score, 0.0, "node %s", ds.Names[ns.Node])
	}

	// Erin bridges both clusters and must rank first.
	erin, ok := ds.Index("Erin")
	require.True(t, ok)
	assert.Equal(t, erin, ranking[0].Node)
}

func TestRoutes_IsWeighted(t *testing.T) {
	ds := dataset.Routes()
	assert.True(t, ds.Weighted)

	g, err := ds.Build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
}

func TestDataset_Index(t *testing.T) {
	ds := dataset.Social()

	id, ok := ds.Index("Alice")
	require.True(t, ok)
	assert.Equal(t, 0, id)

	_, ok = ds.Index("Zed")
	assert.False(t, ok)
}

func TestBuild_UnknownNodeName(t *testing.T) {
	ds := &dataset.Dataset{
		Name:  "broken",
		Names: []string{"a"},
		Edges: []dataset.Edge{{U: "a", V: "ghost", Weight: 1}},
	}
	_, err := ds.Build()
	assert.ErrorIs(t, err, dataset.ErrUnknownNode)
}

func TestParseEdgeList_Unweighted(t *testing.T) {
	in := strings.NewReader(`
# a triangle
a b
b c
a c
`)
	ds, err := dataset.ParseEdgeList("tri", in)
	require.NoError(t, err)

	assert.False(t, ds.Weighted)
	assert.Equal(t, []string{"a", "b", "c"}, ds.Names) // first-appearance order
	require.Len(t, ds.Edges, 3)
	assert.Equal(t, core.DefaultEdgeWeight, ds.Edges[0].Weight)

	g, err := ds.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestParseEdgeList_WeightedMixedLines(t *testing.T) {
	in := strings.NewReader("hub spoke1 2.5\nhub spoke2\n")
	ds, err := dataset.ParseEdgeList("mixed", in)
	require.NoError(t, err)

	assert.True(t, ds.Weighted, "any explicit weight marks the dataset weighted")
	assert.Equal(t, 2.5, ds.Edges[0].Weight)
	assert.Equal(t, 1.0, ds.Edges[1].Weight)
}

func TestParseEdgeList_MalformedLines(t *testing.T) {
	cases := []string{
		"lonely\n",
		"a b c d\n",
		"a b notanumber\n",
	}
	for _, in := range cases {
		_, err := dataset.ParseEdgeList("bad", strings.NewReader(in))
		assert.ErrorIs(t, err, dataset.ErrMalformedLine, "input %q", in)
	}
}

func TestParseEdgeList_Empty(t *testing.T) {
	_, err := dataset.ParseEdgeList("void", strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}
