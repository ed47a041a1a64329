// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair {i,j}, i<j, in lexicographic order. With WithDirected
//     only i→j is emitted (a transitive tournament).

package builder

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²) links.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
