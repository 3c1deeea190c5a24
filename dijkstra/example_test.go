package dijkstra_test

import (
	"fmt"

	"github.com/mkravets/reach/core"
	"github.com/mkravets/reach/dijkstra"
)

// ExampleDijkstra demonstrates that a cheap two-hop detour beats a heavy
// direct edge in the weighted triangle.
func ExampleDijkstra() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, core.WithWeight(1))
	_ = g.AddEdge(1, 2, core.WithWeight(1))
	_ = g.AddEdge(0, 2, core.WithWeight(5))

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)

	path, _ := res.PathTo(2)
	fmt.Println(path)
	// Output:
	// [0 1 2]
	// [0 1 2]
}

// ExampleDijkstra_routeCosts computes travel costs across a small route map.
func ExampleDijkstra_routeCosts() {
	// 0──1 (4)   0──2 (2)   1──2 (1)   1──3 (5)   2──3 (8)
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, core.WithWeight(4))
	_ = g.AddEdge(0, 2, core.WithWeight(2))
	_ = g.AddEdge(1, 2, core.WithWeight(1))
	_ = g.AddEdge(1, 3, core.WithWeight(5))
	_ = g.AddEdge(2, 3, core.WithWeight(8))

	dist, _ := dijkstra.Distances(g, 0)
	fmt.Println(dist)
	// Output:
	// [0 3 2 8]
}
