// SPDX-License-Identifier: MIT
// Package core_test contains unit tests for vertex and edge operations.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// TestVerticesFirstSeenOrder verifies that endpoints are indexed in the order
// they first appear, from before to.
func TestVerticesFirstSeenOrder(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("B", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("A")) // re-adding does not move it

	require.Equal(t, []string{"B", "A", "C"}, g.Vertices())

	i, err := g.IndexOf("C")
	require.NoError(t, err)
	require.Equal(t, 2, i)
}

// TestAddVertexEmptyID ensures empty IDs are rejected everywhere.
func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	_, err := g.AddEdge("", "X", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	require.Zero(t, g.VertexCount())
}

// TestAddEdgeRejectsNonFinite ensures NaN/Inf weights never enter the catalog.
func TestAddEdgeRejectsNonFinite(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "B", math.Inf(-1))
	require.ErrorIs(t, err, core.ErrBadWeight)
	require.Zero(t, g.EdgeCount())
}

// TestParallelRecordsKept verifies that duplicate edges stay separate records.
func TestParallelRecordsKept(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	id2, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
	require.Equal(t, 2, g.EdgeCount())

	succ, err := g.Successors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, succ) // distinct targets only

	in, out, err := g.Degree("B")
	require.NoError(t, err)
	require.Equal(t, 2, in)
	require.Equal(t, 0, out)
}

// TestAddBidirectional verifies both orientations are stored with equal weight.
func TestAddBidirectional(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", 0.5))

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.Equal(t, "A", edges[0].From)
	require.Equal(t, "B", edges[1].From)
	require.Equal(t, edges[0].Weight, edges[1].Weight)
}

// TestUnknownVertexLookups ensures query methods report ErrVertexNotFound.
func TestUnknownVertexLookups(t *testing.T) {
	g := core.NewGraph()
	_, err := g.IndexOf("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Successors("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, _, err = g.Degree("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.False(t, g.HasVertex("ghost"))
}

// TestCopiesAreIndependent ensures returned slices do not alias internal state.
func TestCopiesAreIndependent(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4, 4))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	vs := g.Vertices()
	vs[0] = "mutated"
	es := g.Edges()
	es[0].Weight = 42

	require.Equal(t, []string{"A", "B"}, g.Vertices())
	require.Equal(t, 1.0, g.Edges()[0].Weight)
}
