package core_test

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// ExampleGraph builds a small influence graph and shows that vertex order
// follows first appearance.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddBidirectional("alice", "bob", 1)
	_, _ = g.AddEdge("carol", "alice", 0.5)

	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount())
	// Output:
	// [alice bob carol]
	// 3
}
