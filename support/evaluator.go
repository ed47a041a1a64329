// SPDX-License-Identifier: MIT

package support

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
)

// RoundStat summarizes one diffusion round of an evaluation.
type RoundStat struct {
	Target     string
	Iterations int
	Converged  bool
	Step       float64
}

// Outcome is the result of one Alpha evaluation.
type Outcome struct {
	// Alpha is the reference vertex.
	Alpha string
	// Total is the signed support of Alpha over the final state.
	Total int
	// State is the final state of the named vertices, in vertex order.
	State []float64
	// Rounds lists one entry per executed round, in execution order.
	Rounds []RoundStat
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRunOptions forwards options to every diffusion.Run call.
func WithRunOptions(opts ...diffusion.RunOption) Option {
	return func(e *Evaluator) { e.runOpts = append(e.runOpts, opts...) }
}

// Evaluator scores Alphas over an immutable snapshot of a graph.
type Evaluator struct {
	inj     *diffusion.Injector
	index   map[string]int
	params  diffusion.Params
	runOpts []diffusion.RunOption
}

// NewEvaluator validates p and snapshots g.
// Later mutations of g are not observed by the Evaluator.
func NewEvaluator(g *core.Graph, p diffusion.Params, opts ...Option) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}
	inj, err := diffusion.NewInjector(g, p.Anchors)
	if err != nil {
		return nil, fmt.Errorf("NewEvaluator: %w", err)
	}
	order := inj.Order()
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	e := &Evaluator{inj: inj, index: index, params: p}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Order returns the vertex order of the snapshot.
func (e *Evaluator) Order() []string { return e.inj.Order() }

// Params returns the configuration the Evaluator was built with.
func (e *Evaluator) Params() diffusion.Params { return e.params }

// Evaluate computes the support of alpha.
//
// targets fixes the round order; nil means the vertex order. Every target equal
// to alpha is skipped. Each round starts from the previous round's final state.
//
// Errors:
//   - matrix.ErrUnknownVertex for an alpha or target outside the snapshot,
//   - ErrNonFinite when the final state cannot be aggregated,
//   - any error of diffusion.Inject / diffusion.Run.
//
// Complexity:
//   - Time O(T · MaxIter · (E + n·k)) for T targets, Space O((n+k)² + E).
func (e *Evaluator) Evaluate(alpha string, targets []string) (Outcome, error) {
	ref, ok := e.index[alpha]
	if !ok {
		return Outcome{}, fmt.Errorf("Evaluate: alpha %q: %w", alpha, matrix.ErrUnknownVertex)
	}
	if targets == nil {
		targets = e.inj.Order()
	}

	state := make([]float64, len(e.index))
	state[ref] = diffusion.ReferenceState
	out := Outcome{Alpha: alpha}

	for _, target := range targets {
		if target == alpha {
			continue
		}
		round, err := e.inj.Inject(target, state, ref)
		if err != nil {
			return Outcome{}, fmt.Errorf("Evaluate(%s): %w", alpha, err)
		}
		res, err := diffusion.Run(round, e.params, e.runOpts...)
		if err != nil {
			return Outcome{}, fmt.Errorf("Evaluate(%s): target %s: %w", alpha, target, err)
		}
		state = res.State
		out.Rounds = append(out.Rounds, RoundStat{
			Target:     target,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			Step:       res.Step,
		})
	}

	total, err := Total(state, ref)
	if err != nil {
		return Outcome{}, fmt.Errorf("Evaluate(%s): %w", alpha, err)
	}
	out.Total = total
	out.State = state

	return out, nil
}
