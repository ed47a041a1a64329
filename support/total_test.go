// SPDX-License-Identifier: MIT
package support_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/support"
)

func TestTotal(t *testing.T) {
	cases := []struct {
		name  string
		state []float64
		ref   int
		want  int
	}{
		{"reference excluded", []float64{5, 1, -1}, 0, 0},
		{"zero contributes nothing", []float64{1, 0, 0, 0.1}, 0, 1},
		{"all negative", []float64{1, -0.5, -2, -1e-300}, 0, -3},
		{"reference in the middle", []float64{3, -7, 4}, 1, 2},
		{"single vertex", []float64{1}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := support.Total(tc.state, tc.ref)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTotalRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := support.Total([]float64{1, v, 1}, 0)
		require.ErrorIs(t, err, support.ErrNonFinite)
	}
	// A NaN on the reference itself is not skipped either.
	_, err := support.Total([]float64{math.NaN(), 1}, 0)
	require.ErrorIs(t, err, support.ErrNonFinite)
}

func TestTotalReferenceRange(t *testing.T) {
	_, err := support.Total([]float64{1, 2}, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = support.Total(nil, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
