package core_test

import (
	"fmt"

	"github.com/mkravets/reach/core"
)

// ExampleGraph_AddEdge builds a small weighted triangle and prints one
// adjacency sequence, demonstrating insertion-order preservation.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1)                       // default weight 1.0
	_ = g.AddEdge(1, 2)                       // default weight 1.0
	_ = g.AddEdge(0, 2, core.WithWeight(5.0)) // explicit weight

	nbrs, _ := g.Neighbors(0)
	for _, e := range nbrs {
		fmt.Printf("0 → %d (w=%g)\n", e.To, e.Weight)
	}
	// Output:
	// 0 → 1 (w=1)
	// 0 → 2 (w=5)
}
