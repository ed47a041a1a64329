// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every record is kept.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), 1)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	succ, err := g.Successors("X")
	require.NoError(t, err)
	require.Len(t, succ, num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReaders runs readers against a writer to surface races under -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", 1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = g.Vertices()
				_ = g.Edges()
				_, _ = g.Successors("A")
			}
		}()
	}
	for j := 0; j < 50; j++ {
		_, err := g.AddEdge("A", fmt.Sprintf("W%d", j), 1)
		require.NoError(t, err)
	}
	wg.Wait()
	require.Equal(t, 52, g.EdgeCount())
}
