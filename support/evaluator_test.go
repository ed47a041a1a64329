// SPDX-License-Identifier: MIT
package support_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/support"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", 1))
	require.NoError(t, g.AddBidirectional("B", "C", 1))

	return g
}

// TestEvaluateChain is the reference scenario: A-B-C, two anchors, Alpha A,
// targets [B, C]. Both rounds hit the iteration cap.
func TestEvaluateChain(t *testing.T) {
	ev, err := support.NewEvaluator(chain(t), diffusion.DefaultParams())
	require.NoError(t, err)

	out, err := ev.Evaluate("A", []string{"B", "C"})
	require.NoError(t, err)

	require.Equal(t, "A", out.Alpha)
	require.Equal(t, -2, out.Total)
	require.InDeltaSlice(t,
		[]float64{-0.8958631735085556, -0.9312125279366344, -0.9896793326756576},
		out.State, 1e-12)

	require.Len(t, out.Rounds, 2)
	for i, target := range []string{"B", "C"} {
		require.Equal(t, target, out.Rounds[i].Target)
		require.Equal(t, 50, out.Rounds[i].Iterations)
		require.False(t, out.Rounds[i].Converged)
	}
}

func TestEvaluateIsReproducible(t *testing.T) {
	g := chain(t)
	first, err := support.NewEvaluator(g, diffusion.DefaultParams())
	require.NoError(t, err)
	want, err := first.Evaluate("A", []string{"B", "C"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		ev, err := support.NewEvaluator(g, diffusion.DefaultParams())
		require.NoError(t, err)
		got, err := ev.Evaluate("A", []string{"B", "C"})
		require.NoError(t, err)
		require.Equal(t, want, got) // bit-for-bit
	}
}

func TestEvaluateDefaultTargetsSkipAlpha(t *testing.T) {
	ev, err := support.NewEvaluator(chain(t), diffusion.DefaultParams())
	require.NoError(t, err)

	out, err := ev.Evaluate("B", nil)
	require.NoError(t, err)
	require.Equal(t, -2, out.Total)
	require.Len(t, out.Rounds, 2)
	require.Equal(t, "A", out.Rounds[0].Target)
	require.Equal(t, "C", out.Rounds[1].Target)
	require.InDeltaSlice(t,
		[]float64{-0.8665018599859, -0.9108976095309409, -0.9865867193251608},
		out.State, 1e-12)
}

func TestEvaluateWithoutAnchorsKeepsSupport(t *testing.T) {
	p := diffusion.DefaultParams()
	p.Anchors = 0
	ev, err := support.NewEvaluator(chain(t), p)
	require.NoError(t, err)

	out, err := ev.Evaluate("A", nil)
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
}

func TestEvaluateSingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	ev, err := support.NewEvaluator(g, diffusion.DefaultParams())
	require.NoError(t, err)

	out, err := ev.Evaluate("solo", nil)
	require.NoError(t, err)
	require.Zero(t, out.Total)
	require.Empty(t, out.Rounds)
	require.Equal(t, []float64{1}, out.State)
}

func TestEvaluateLookupErrors(t *testing.T) {
	ev, err := support.NewEvaluator(chain(t), diffusion.DefaultParams())
	require.NoError(t, err)

	_, err = ev.Evaluate("Z", nil)
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	_, err = ev.Evaluate("A", []string{"B", "ghost"})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestNewEvaluatorRejectsBadParams(t *testing.T) {
	p := diffusion.DefaultParams()
	p.Tol = -1
	_, err := support.NewEvaluator(chain(t), p)
	require.ErrorIs(t, err, diffusion.ErrInvalidParams)
}

// TestEvaluateRangeAndConcurrency scores every Alpha of a star concurrently
// and checks each result against a sequential run and the [-(n-1), n-1] range.
func TestEvaluateRangeAndConcurrency(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"l1", "l2", "l3", "l4", "l5"} {
		require.NoError(t, g.AddBidirectional("hub", leaf, 0.5))
	}
	_, err := g.AddEdge("l1", "l2", 2)
	require.NoError(t, err)

	ev, err := support.NewEvaluator(g, diffusion.DefaultParams())
	require.NoError(t, err)
	order := ev.Order()
	n := len(order)

	want := make([]support.Outcome, n)
	for i, alpha := range order {
		want[i], err = ev.Evaluate(alpha, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, want[i].Total, -(n - 1))
		require.LessOrEqual(t, want[i].Total, n-1)
	}

	got := make([]support.Outcome, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i, alpha := range order {
		wg.Add(1)
		go func(i int, alpha string) {
			defer wg.Done()
			got[i], errs[i] = ev.Evaluate(alpha, nil)
		}(i, alpha)
	}
	wg.Wait()

	for i := range order {
		require.NoError(t, errs[i])
		require.Equal(t, want[i], got[i])
	}
}

func TestWithRunOptionsObservesRounds(t *testing.T) {
	iterations := 0
	ev, err := support.NewEvaluator(chain(t), diffusion.DefaultParams(),
		support.WithRunOptions(diffusion.WithOnIteration(func(int, []float64) { iterations++ })))
	require.NoError(t, err)

	out, err := ev.Evaluate("A", []string{"B", "C"})
	require.NoError(t, err)
	require.Equal(t, out.Rounds[0].Iterations+out.Rounds[1].Iterations, iterations)
}
