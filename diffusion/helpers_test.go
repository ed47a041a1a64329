// SPDX-License-Identifier: MIT
package diffusion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// chain returns the bidirectional path A-B-C with the given edge weight.
func chain(t *testing.T, w float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddBidirectional("A", "B", w))
	require.NoError(t, g.AddBidirectional("B", "C", w))

	return g
}
