// SPDX-License-Identifier: MIT
package diffusion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, diffusion.DefaultParams().Validate())

	bad := []func(p *diffusion.Params){
		func(p *diffusion.Params) { p.MaxIter = 0 },
		func(p *diffusion.Params) { p.Tol = -1 },
		func(p *diffusion.Params) { p.Anchors = -2 },
		func(p *diffusion.Params) { p.ClipMin, p.ClipMax = 5, 5 },
	}
	for i, mutate := range bad {
		p := diffusion.DefaultParams()
		mutate(&p)
		require.ErrorIs(t, p.Validate(), diffusion.ErrInvalidParams, "case %d", i)
	}
}

// TestRunNoAnchorConsensus diffuses from the middle of a chain with no anchors:
// the symmetric pair stays equal and the round converges before the cap.
func TestRunNoAnchorConsensus(t *testing.T) {
	inj, err := diffusion.NewInjector(chain(t, 1), 0)
	require.NoError(t, err)
	r, err := inj.Inject("A", nil, 1)
	require.NoError(t, err)

	p := diffusion.DefaultParams()
	p.Delta = 0
	res, err := diffusion.Run(r, p)
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, 45, res.Iterations)
	require.Less(t, res.Step, p.Tol)
	require.Equal(t, res.State[0], res.State[2])
	require.InDelta(t, 1.0/3, res.State[0], 1e-3)
	require.InDelta(t, 1.0/3, res.State[1], 1e-3)
}

// TestRunAnchorAndBoundInvariance checks every iteration of an anchored round.
func TestRunAnchorAndBoundInvariance(t *testing.T) {
	inj, err := diffusion.NewInjector(chain(t, 1), 2)
	require.NoError(t, err)
	r, err := inj.Inject("B", nil, 0)
	require.NoError(t, err)

	p := diffusion.DefaultParams()
	calls := 0
	res, err := diffusion.Run(r, p, diffusion.WithOnIteration(func(iter int, x []float64) {
		calls++
		require.Equal(t, calls, iter)
		for _, a := range r.Anchors {
			require.Equal(t, -1.0, x[a])
		}
		for _, v := range x {
			require.GreaterOrEqual(t, v, p.ClipMin)
			require.LessOrEqual(t, v, p.ClipMax)
		}
	}))
	require.NoError(t, err)
	require.Equal(t, res.Iterations, calls)
	require.Len(t, res.State, 3)
	require.Equal(t, []float64{1, 0, 0, -1, -1}, r.State) // input untouched
}

// TestRunClipsDivergence drives an unstable gain and checks the hard clip.
func TestRunClipsDivergence(t *testing.T) {
	inj, err := diffusion.NewInjector(chain(t, 500), 2)
	require.NoError(t, err)
	r, err := inj.Inject("C", nil, 0)
	require.NoError(t, err)

	p := diffusion.DefaultParams()
	p.Epsilon = 1
	hitBound := false
	res, err := diffusion.Run(r, p, diffusion.WithOnIteration(func(_ int, x []float64) {
		for _, v := range x {
			require.GreaterOrEqual(t, v, p.ClipMin)
			require.LessOrEqual(t, v, p.ClipMax)
			if v == p.ClipMin || v == p.ClipMax {
				hitBound = true
			}
		}
	}))
	require.NoError(t, err)
	require.True(t, hitBound)
	require.False(t, res.Converged)
	require.Equal(t, p.MaxIter, res.Iterations)
}

// TestRunIterationCapIsSoft ensures the cap returns the last state without error.
func TestRunIterationCapIsSoft(t *testing.T) {
	inj, err := diffusion.NewInjector(chain(t, 1), 2)
	require.NoError(t, err)
	r, err := inj.Inject("B", nil, 0)
	require.NoError(t, err)

	p := diffusion.DefaultParams()
	p.MaxIter = 1
	res, err := diffusion.Run(r, p)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)

	// One synchronous sweep from x = [1, 0, 0 | -1, -1]:
	//   A: 1 + 0.05·(0-1)                           = 0.95
	//   B: 0 + 0.05·(1 + 0 - 1 - 1) + 0.1·(-1 - 1)  = -0.25
	//   C: 0 + 0.05·(0-0)                           = 0
	require.InDeltaSlice(t, []float64{0.95, -0.25, 0}, res.State, 1e-12)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := diffusion.Run(nil, diffusion.DefaultParams())
	require.ErrorIs(t, err, diffusion.ErrNilRound)

	inj, err := diffusion.NewInjector(chain(t, 1), 1)
	require.NoError(t, err)
	r, err := inj.Inject("B", nil, 0)
	require.NoError(t, err)

	p := diffusion.DefaultParams()
	p.MaxIter = 0
	_, err = diffusion.Run(r, p)
	require.ErrorIs(t, err, diffusion.ErrInvalidParams)
}
