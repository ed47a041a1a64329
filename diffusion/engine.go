// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrNilRound is returned when Run receives no scratch space.
var ErrNilRound = errors.New("diffusion: round is nil")

// Result is the outcome of one round.
type Result struct {
	// State holds the final states of the named vertices, in vertex order.
	State []float64
	// Iterations is the number of updates performed (1..MaxIter).
	Iterations int
	// Converged is false when MaxIter was reached before the step norm fell
	// below Tol. That is a soft cutoff, not an error.
	Converged bool
	// Step is the Euclidean norm of the last update.
	Step float64
}

// Run iterates the update rule on r until convergence or p.MaxIter.
//
// Implementation:
//   - Stage 1: validate params; cache each vertex's in-neighbor weights.
//   - Stage 2: per iteration, compute every non-fixed x'[u] from the previous
//     snapshot x only, clip it, copy fixed slots forward.
//   - Stage 3: stop when ‖x'-x‖₂ < Tol (returning x') or after MaxIter updates
//     (returning the last x').
//
// Errors:
//   - ErrNilRound, ErrInvalidParams, matrix errors from the weight cache.
//
// Complexity:
//   - Time O(MaxIter · (E + n·k)), Space O(n + k + E).
func Run(r *Round, p Params, opts ...RunOption) (Result, error) {
	if r == nil || r.Adj == nil {
		return Result{}, ErrNilRound
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := r.Adj.Size()
	if len(r.State) != size || len(r.Fixed) != size {
		return Result{}, fmt.Errorf("Run: state=%d fixed=%d size=%d: %w", len(r.State), len(r.Fixed), size, ErrInvalidParams)
	}

	// 1) In-neighbor weights are constant for the whole round.
	inW := make([][]float64, size)
	for u := 0; u < size; u++ {
		if r.Fixed[u] {
			continue
		}
		ws, err := r.Adj.InWeights(u)
		if err != nil {
			return Result{}, fmt.Errorf("Run: %w", err)
		}
		inW[u] = ws
	}

	x := append([]float64(nil), r.State...)
	next := make([]float64, size)
	res := Result{}

	// 2) Synchronous sweeps.
	for iter := 1; iter <= p.MaxIter; iter++ {
		for u := 0; u < size; u++ {
			if r.Fixed[u] {
				next[u] = x[u]
				continue
			}
			xu := x[u]

			var neighbor float64
			for k, v := range r.Adj.In[u] {
				neighbor += inW[u][k] * (x[v] - xu)
			}

			var anchor float64
			if u < len(r.AnchorWeights) {
				for i, a := range r.Anchors {
					anchor += r.AnchorWeights[u][i] * (x[a] - xu)
				}
			}

			next[u] = clip(xu+p.Epsilon*neighbor+p.Delta*anchor, p.ClipMin, p.ClipMax)
		}

		res.Step = floats.Distance(next, x, 2)
		res.Iterations = iter
		x, next = next, x
		o.OnIteration(iter, x)

		// 3) Early stop on the fresh state.
		if res.Step < p.Tol {
			res.Converged = true
			break
		}
	}

	res.State = append([]float64(nil), x[:r.Named()]...)

	return res, nil
}
