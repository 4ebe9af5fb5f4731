package components_test

import (
	"fmt"

	"github.com/torvenik/graphden/components"
	"github.com/torvenik/graphden/core"
)

// ExampleBFS traverses a small tree and prints layers as they are reached.
func ExampleBFS() {
	//        0
	//       / \
	//      1   2
	//     /
	//    3
	g := core.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)

	res, _ := components.BFS(g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 3:", res.Depth[3])
	path, _ := res.PathTo(3)
	fmt.Println("path to 3:", path)

	// Output:
	// order: [0 1 2 3]
	// depth of 3: 2
	// path to 3: [0 1 3]
}

// ExampleSummarize sizes the components of a fragmented graph.
func ExampleSummarize() {
	// {0,1,2} chain, {3,4} pair, 5 isolated.
	g := core.New(6)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(3, 4)

	s, _ := components.Summarize(g)
	fmt.Println("sizes:", s.Sizes)
	fmt.Println("count:", s.Count)
	fmt.Println("largest:", s.Largest)

	// Output:
	// sizes: [3 2 1]
	// count: 3
	// largest: 3
}
