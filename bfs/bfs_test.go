package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/reach/bfs"
	"github.com/mkravets/reach/core"
)

// buildPath constructs the three-node path 0—1—2.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrNilGraph)
}

func TestBFS_SourceOutOfRange(t *testing.T) {
	g := buildPath(t)
	for _, src := range []int{-1, 3, 42} {
		_, err := bfs.BFS(g, src)
		assert.ErrorIs(t, err, bfs.ErrSourceOutOfRange, "source=%d", src)
	}
}

func TestBFS_OptionViolation(t *testing.T) {
	g := buildPath(t)
	_, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_PathGraphDistances(t *testing.T) {
	g := buildPath(t)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, res.Dist)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, []int{-1, 0, 1}, res.Parent)
}

func TestBFS_SelfDistanceZero(t *testing.T) {
	g := buildPath(t)
	for src := 0; src < 3; src++ {
		res, err := bfs.BFS(g, src)
		require.NoError(t, err)
		assert.Zero(t, res.Dist[src], "source=%d", src)
	}
}

func TestBFS_UnreachableKeepsSentinel(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.True(t, core.IsUnreachable(res.Dist[2]))
	assert.Equal(t, -1, res.Parent[2])

	// From the isolated node, everything else is unreachable.
	res, err = bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Zero(t, res.Dist[2])
	assert.True(t, core.IsUnreachable(res.Dist[0]))
	assert.True(t, core.IsUnreachable(res.Dist[1]))
}

func TestBFS_SymmetricDistances(t *testing.T) {
	// 0—1, 1—2, 1—3, 3—4: hop distances must agree reciprocally.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	for u := 0; u < 5; u++ {
		fromU, err := bfs.Distances(g, u)
		require.NoError(t, err)
		for v := 0; v < 5; v++ {
			fromV, err := bfs.Distances(g, v)
			require.NoError(t, err)
			assert.Equal(t, fromU[v], fromV[u], "dist(%d,%d)", u, v)
		}
	}
}

func TestBFS_SelfLoopDoesNotAlterDistances(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(0, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, res.Dist)
}

func TestBFS_DeterministicOrderFollowsInsertion(t *testing.T) {
	// Star around 0 with spokes inserted 3, 1, 2: BFS must visit them in
	// that exact order.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2}, res.Order)
}

func TestBFS_MaxDepthStopsExpansion(t *testing.T) {
	// Chain 0—1—2—3—4 with depth cap 2.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.True(t, core.IsUnreachable(res.Dist[3]))
	assert.True(t, core.IsUnreachable(res.Dist[4]))
}

func TestBFS_OnVisitHookSeesEveryNodeOnce(t *testing.T) {
	g := buildPath(t)

	type visit struct{ id, depth int }
	var seen []visit
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, depth int) {
		seen = append(seen, visit{id, depth})
	}))
	require.NoError(t, err)
	assert.Equal(t, []visit{{0, 0}, {1, 1}, {2, 2}}, seen)
}

func TestBFS_ParallelEdgesDoNotDuplicateVisits(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []float64{0, 1}, res.Dist)
}

func TestResult_PathTo(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	// Two routes 0→4: 0-1-2-4 and 0-3-4; BFS must find the shorter.
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 4))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(3, 4))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, path)

	_, err = res.PathTo(99)
	assert.Error(t, err)
}
