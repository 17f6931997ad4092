package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lpath/builder"
	"github.com/katalvlaran/lpath/core"
)

// ExampleBuildGraph composes a directed path and a directed triangle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.Path(3),
		builder.Cycle(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.EdgeCount())
	for v := 0; v < g.Order(); v++ {
		fmt.Println(v, g.Neighbors(v))
	}
	// Output:
	// 6 5
	// 0 [1]
	// 1 [2]
	// 2 []
	// 3 [4]
	// 4 [5]
	// 5 [3]
}
