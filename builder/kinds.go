// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"
)

// Kinds lists the topology names accepted by ByKind.
var Kinds = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}

// ByKind resolves a topology by name. n is the vertex count (for "grid", the
// side of an n×n lattice) and p the link probability of "random".
func ByKind(kind string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(kind) {
	case "path", "chain":
		return Path(n), nil
	case "cycle", "ring":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	case "grid":
		return Grid(n, n), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("ByKind(%q): want one of %s: %w", kind, strings.Join(Kinds, ", "), ErrUnknownKind)
	}
}
