// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/matrix"
)

const (
	// AnchorState is the pinned state of every anchor slot.
	AnchorState = -1.0
	// AnchorWeight is the weight of each anchor→target edge and of each
	// component of the target's anchor-weight vector.
	AnchorWeight = 1.0
	// ReferenceState is the initial state of the reference (Alpha) vertex.
	ReferenceState = 1.0
)

// AnchorSet returns the anchor group for a node order: the first min(k, n)
// vertex IDs. The labels only fix the group size; anchors are materialized as
// unnamed arena slots and never alias the vertices they are named after.
func AnchorSet(order []string, k int) []string {
	if k > len(order) {
		k = len(order)
	}
	if k < 0 {
		k = 0
	}

	return append([]string(nil), order[:k]...)
}

// Round is the scratch space of one diffusion round. It is owned by the
// caller and never shared with another round.
type Round struct {
	// Adj holds the base edges plus the anchor→target edges over n+k slots.
	Adj *matrix.Adjacency
	// State is the initial extended state (length n+k).
	State []float64
	// Anchors lists the anchor slot indices n..n+k-1.
	Anchors []int
	// Fixed marks the indices the update rule skips (the anchors).
	Fixed []bool
	// AnchorWeights has one length-k row per named vertex; only the target's
	// row is non-zero (all components equal AnchorWeight).
	AnchorWeights [][]float64
	// Target is the index of the vertex the anchors are wired to.
	Target int
}

// Named returns the number of named (non-anchor) vertices in the round.
func (r *Round) Named() int { return r.Adj.Named() }

// Injector produces Rounds over an immutable snapshot of a graph.
// It is safe for concurrent use: Inject never mutates the snapshot.
type Injector struct {
	order   []string
	edges   []core.Edge
	anchors []string
}

// NewInjector snapshots g's vertex order and edge records and resolves the
// anchor group of size min(k, n).
func NewInjector(g *core.Graph, k int) (*Injector, error) {
	if k < 0 {
		return nil, fmt.Errorf("NewInjector: %w: anchors=%d", ErrInvalidParams, k)
	}
	order := g.Vertices()

	return &Injector{
		order:   order,
		edges:   g.Edges(),
		anchors: AnchorSet(order, k),
	}, nil
}

// Order returns a copy of the snapshot's vertex order.
func (inj *Injector) Order() []string { return append([]string(nil), inj.order...) }

// AnchorCount returns the effective anchor group size k.
func (inj *Injector) AnchorCount() int { return len(inj.anchors) }

// Inject builds the scratch space for one round aimed at target.
//
// Implementation:
//   - Stage 1: rebuild the base adjacency over n named vertices + k arena slots.
//   - Stage 2: link every anchor slot to target with weight 1 and pin it to -1.
//   - Stage 3: seed the state: carried (zero-padded to n+k, never truncated)
//     or, when carried is nil, zeros with State[reference] = 1.
//   - Stage 4: fill the anchor-weight table (target row all ones).
//
// Errors:
//   - matrix.ErrUnknownVertex (target not in the order; also for a reference
//     index outside [0,n) when carried is nil),
//   - matrix.ErrDimensionMismatch (carried longer than n+k).
//
// Complexity:
//   - Time O((n+k)² + E), Space O((n+k)² + E + n·k).
func (inj *Injector) Inject(target string, carried []float64, reference int) (*Round, error) {
	n, k := len(inj.order), len(inj.anchors)

	// 1) Fresh base adjacency with an anchor arena.
	adj, err := matrix.BuildAdjacency(inj.order, inj.edges, matrix.WithArena(k))
	if err != nil {
		return nil, fmt.Errorf("Inject: %w", err)
	}
	t, err := adj.Lookup(target)
	if err != nil {
		return nil, fmt.Errorf("Inject: target: %w", err)
	}

	// 2) State vector.
	size := n + k
	state := make([]float64, size)
	if carried == nil {
		if reference < 0 || reference >= n {
			return nil, fmt.Errorf("Inject: reference index %d of %d: %w", reference, n, matrix.ErrUnknownVertex)
		}
		state[reference] = ReferenceState
	} else {
		if len(carried) > size {
			return nil, fmt.Errorf("Inject: carried state has %d entries, round has %d: %w",
				len(carried), size, matrix.ErrDimensionMismatch)
		}
		copy(state, carried)
	}

	// 3) Anchors: wire, pin and mark fixed.
	anchors := make([]int, k)
	fixed := make([]bool, size)
	for i := 0; i < k; i++ {
		slot := n + i
		if err = adj.Link(slot, t, AnchorWeight); err != nil {
			return nil, fmt.Errorf("Inject: anchor %d: %w", i, err)
		}
		anchors[i] = slot
		state[slot] = AnchorState
		fixed[slot] = true
	}

	// 4) Anchor-weight table.
	weights := make([][]float64, n)
	for u := range weights {
		weights[u] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		weights[t][i] = AnchorWeight
	}

	return &Round{
		Adj:           adj,
		State:         state,
		Anchors:       anchors,
		Fixed:         fixed,
		AnchorWeights: weights,
		Target:        t,
	}, nil
}
