package graphio_test

import (
	"fmt"
	"strings"

	"github.com/torvenik/graphden/components"
	"github.com/torvenik/graphden/graphio"
	"github.com/torvenik/graphden/mst"
)

// ExampleRead parses a graph description and runs both algorithms on it —
// the classic driver pipeline in a few lines.
func ExampleRead() {
	const input = `4 4
0 1 1
1 2 2
2 3 3
0 3 10`

	g, err := graphio.Read(strings.NewReader(input))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	largest, _ := components.Largest(g)
	_, weight, _ := mst.Kruskal(g)
	fmt.Println("largest component:", largest)
	fmt.Println("mst weight:", weight)

	// Output:
	// largest component: 4
	// mst weight: 6
}
