// SPDX-License-Identifier: MIT

package support

import (
	"errors"
	"fmt"
	"math"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
)

// ErrNonFinite is returned when a state vector holds NaN or ±Inf at
// aggregation time.
var ErrNonFinite = errors.New("support: non-finite state")

// Total reduces a final state to the signed support of the vertex at ref.
//
// Every index other than ref contributes +1 when strictly positive, -1 when
// strictly negative and 0 when exactly zero, so the result lies in
// [-(n-1), n-1].
//
// Errors:
//   - matrix.ErrOutOfRange if ref is not an index of state,
//   - ErrNonFinite for any NaN/Inf component (the reference included).
func Total(state []float64, ref int) (int, error) {
	if ref < 0 || ref >= len(state) {
		return 0, fmt.Errorf("Total: reference %d of %d: %w", ref, len(state), matrix.ErrOutOfRange)
	}

	total := 0
	for i, v := range state {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("Total: state[%d]=%v: %w", i, v, ErrNonFinite)
		}
		if i == ref {
			continue
		}
		switch {
		case v > 0:
			total++
		case v < 0:
			total--
		}
	}

	return total, nil
}
