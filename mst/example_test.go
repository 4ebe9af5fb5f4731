package mst_test

import (
	"fmt"

	"github.com/torvenik/graphden/core"
	"github.com/torvenik/graphden/mst"
)

// ExampleKruskal spans a 4-vertex cycle, dropping its heaviest edge.
func ExampleKruskal() {
	//	0—1 (1)   1—2 (2)   2—3 (3)   0—3 (10)
	g := core.New(4)
	_ = g.AddEdge(0, 1, core.WithWeight(1))
	_ = g.AddEdge(1, 2, core.WithWeight(2))
	_ = g.AddEdge(2, 3, core.WithWeight(3))
	_ = g.AddEdge(0, 3, core.WithWeight(10))

	forest, total, _ := mst.Kruskal(g)
	for _, e := range forest {
		fmt.Printf("(%d,%d) w=%g\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)

	// Output:
	// (0,1) w=1
	// (1,2) w=2
	// (2,3) w=3
	// total: 6
}

// ExamplePrim grows the same tree from a chosen root.
func ExamplePrim() {
	g := core.New(4)
	_ = g.AddEdge(0, 1, core.WithWeight(1))
	_ = g.AddEdge(1, 2, core.WithWeight(2))
	_ = g.AddEdge(2, 3, core.WithWeight(3))
	_ = g.AddEdge(0, 3, core.WithWeight(10))

	_, total, _ := mst.Prim(g, 2)
	fmt.Println("total:", total)

	// Output:
	// total: 6
}

// ExampleDisjointSet partitions a small universe by hand.
func ExampleDisjointSet() {
	d := mst.NewDisjointSet(5)
	d.Union(0, 1)
	d.Union(3, 4)

	fmt.Println("sets:", d.Sets())
	fmt.Println("0 with 1:", d.SameSet(0, 1))
	fmt.Println("1 with 3:", d.SameSet(1, 3))

	// Output:
	// sets: 3
	// 0 with 1: true
	// 1 with 3: false
}
