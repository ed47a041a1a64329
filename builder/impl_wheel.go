// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Wₙ = Cₙ₋₁ + hub: a ring over cfg.idFn(0..n-2) plus hub cfg.idFn(n-1) with a
// spoke to every ring vertex, so n ≥ 4.
//
// Determinism:
//   • Ring links first (as Cycle), then spokes in ring order.

package builder

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := cfg.idFn(n - 1)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			if err := link(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
