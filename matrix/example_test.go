package matrix_test

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
)

// ExampleBuildAdjacency shows parallel records summing into one cell.
func ExampleBuildAdjacency() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddBidirectional("B", "C", 0.5)

	a, err := matrix.BuildAdjacency(g.Vertices(), g.Edges())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(a.Mat)
	fmt.Println(a.In)
	// Output:
	// [0, 2, 0]
	// [0, 0, 0.5]
	// [0, 0.5, 0]
	// [[] [0 2] [1]]
}
