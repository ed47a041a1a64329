package edgelist_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/edgelist"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
)

func adjacencyOf(t *testing.T, g *core.Graph) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.BuildAdjacency(g.Vertices(), g.Edges())
	require.NoError(t, err)

	return a
}

func TestReadUndirectedExpansion(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("from\tto\tdir\tw\nA\tB\t0\t2.5\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, g.Vertices())

	a := adjacencyOf(t, g)
	ab, _ := a.Mat.At(0, 1)
	ba, _ := a.Mat.At(1, 0)
	require.Equal(t, 2.5, ab)
	require.Equal(t, ab, ba)
}

func TestReadDirectedOnly(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("h\nA\tB\t1\t1\nB\tC\t-3\t1\n"))
	require.NoError(t, err)

	a := adjacencyOf(t, g)
	ba, _ := a.Mat.At(1, 0)
	require.Zero(t, ba)
	require.Equal(t, 2, g.EdgeCount())
}

func TestReadDuplicateRecordsAccumulate(t *testing.T) {
	in := "h\nA\tB\t1\t0.75\nA\tB\t1\t0.75\n"
	g, err := edgelist.Read(strings.NewReader(in))
	require.NoError(t, err)

	a := adjacencyOf(t, g)
	ab, _ := a.Mat.At(0, 1)
	require.Equal(t, 1.5, ab)
}

func TestReadHeaderAlwaysDiscarded(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("X\tY\t1\t1\nA\tB\t1\t1\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestReadSkipsBlankLinesAndTrims(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("h\n\n  A\tB\t0\t1  \r\n\n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestReadParseErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		line int
	}{
		{"too few fields", "h\nA\tB\t1\n", 2},
		{"too many fields", "h\nA\tB\t1\t1\tx\n", 2},
		{"bad weight", "h\nA\tB\t1\t1\nA\tC\t1\theavy\n", 3},
		{"non finite weight", "h\nA\tB\t1\tNaN\n", 2},
		{"bad flag", "h\nA\tB\tyes\t1\n", 2},
		{"empty id", "h\n\tB\t1\t1\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := edgelist.Read(strings.NewReader(tc.body))
			require.Nil(t, g) // no partial graph
			require.ErrorIs(t, err, edgelist.ErrMalformedRecord)

			var pe *edgelist.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestReadFileAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(path, []byte("h\nA\tB\t0\t1\nC\tA\t1\t0.5\n"), 0o644))

	g, err := edgelist.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))
	back, err := edgelist.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Vertices(), back.Vertices())
	require.Equal(t, len(g.Edges()), len(back.Edges()))

	_, err = edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
