// SPDX-License-Identifier: MIT
// Package matrix - adjacency builder over an explicit node order.
//
// Deliverables:
//  1. A[i,j] accumulates every record i→j (parallel records sum; nothing is dropped).
//  2. In[j] lists every i with at least one record i→j exactly once, in the
//     order the first such record was seen.
//  3. Optional arena: k unnamed slots at indices n..n+k-1 that only Link can wire.
//  4. Fresh allocation per call; an Adjacency is never reused across builds.
//
// AI-Hints:
//   - Build one Adjacency per diffusion round. Linking arena slots into a shared
//     Adjacency would leak synthetic edges into later rounds.

package matrix

import (
	"fmt"
	"math"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// defaultReserve is the initial capacity for in-neighbor slices.
const defaultReserve = 4

// Adjacency wraps a square Dense matrix over a named node order plus an
// optional arena of unnamed slots.
//
// Mat is (n+arena)×(n+arena). In[j] is the in-neighbor index of column j.
type Adjacency struct {
	Mat *Dense  // summed edge weights
	In  [][]int // In[j] = distinct sources i with a record i→j

	order []string             // named vertices, index → ID
	index map[string]int       // ID → index
	seen  map[pairKey]struct{} // (i,j) pairs already present in In
}

// BuildAdjacency constructs the adjacency of edges over order.
//
// Implementation:
//   - Stage 1: resolve options; index the order (duplicates rejected).
//   - Stage 2: allocate (n+arena)² zero matrix and empty neighbor lists.
//   - Stage 3: fold every edge record into Mat and In via Link.
//
// Errors:
//   - ErrBadShape (invalid option), ErrInvalidDimensions (n+arena == 0),
//     ErrDuplicateVertex, ErrUnknownVertex (endpoint not in order),
//     ErrInvalidWeight (non-finite weight).
//
// Determinism:
//   - Same order and edge sequence ⇒ identical Mat and In.
//
// Complexity:
//   - Time O((n+k)² + E), Space O((n+k)² + E).
func BuildAdjacency(order []string, edges []core.Edge, opts ...Option) (*Adjacency, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, fmt.Errorf("BuildAdjacency: %w", o.err)
	}

	n := len(order)
	index := make(map[string]int, n)
	for i, id := range order {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("BuildAdjacency: %q: %w", id, ErrDuplicateVertex)
		}
		index[id] = i
	}

	size := n + o.arena
	mat, err := NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("BuildAdjacency: size %d: %w", size, err)
	}
	a := &Adjacency{
		Mat:   mat,
		In:    make([][]int, size),
		order: append([]string(nil), order...),
		index: index,
		seen:  make(map[pairKey]struct{}, len(edges)),
	}
	for j := range a.In {
		a.In[j] = make([]int, 0, defaultReserve)
	}

	var i, j int
	for _, e := range edges {
		if i, err = a.Lookup(e.From); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: edge %s: %w", e.ID, err)
		}
		if j, err = a.Lookup(e.To); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: edge %s: %w", e.ID, err)
		}
		if err = a.Link(i, j, e.Weight); err != nil {
			return nil, fmt.Errorf("BuildAdjacency: edge %s: %w", e.ID, err)
		}
	}

	return a, nil
}

// Lookup returns the index of a named vertex. Arena slots are not addressable by ID.
// Complexity: O(1).
func (a *Adjacency) Lookup(id string) (int, error) {
	i, ok := a.index[id]
	if !ok {
		return -1, fmt.Errorf("Lookup(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// Named returns the number of named vertices n.
func (a *Adjacency) Named() int { return len(a.order) }

// Size returns n plus the arena size.
func (a *Adjacency) Size() int { return a.Mat.Rows() }

// Order returns a copy of the named vertex order.
func (a *Adjacency) Order() []string { return append([]string(nil), a.order...) }

// Link adds weight w to A[from,to] and records from as an in-neighbor of to
// the first time the pair is linked. Works for named and arena indices alike.
//
// Errors:
//   - ErrInvalidWeight (non-finite w), ErrOutOfRange (bad index),
//     ErrNaNInf (the accumulated cell would overflow).
//
// Complexity: O(1) amortized.
func (a *Adjacency) Link(from, to int, w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("Link(%d,%d): %w", from, to, ErrInvalidWeight)
	}
	if err := a.Mat.Add(from, to, w); err != nil {
		return fmt.Errorf("Link: %w", err)
	}
	key := pairKey{u: from, v: to}
	if _, ok := a.seen[key]; !ok {
		a.seen[key] = struct{}{}
		a.In[to] = append(a.In[to], from)
	}

	return nil
}

// InWeights returns A[v,u] for every v in In[u], aligned with In[u].
// Complexity: O(len(In[u])).
func (a *Adjacency) InWeights(u int) ([]float64, error) {
	if u < 0 || u >= len(a.In) {
		return nil, fmt.Errorf("InWeights(%d): %w", u, ErrOutOfRange)
	}
	ws := make([]float64, len(a.In[u]))
	for k, v := range a.In[u] {
		w, err := a.Mat.At(v, u)
		if err != nil {
			return nil, fmt.Errorf("InWeights(%d): %w", u, err)
		}
		ws[k] = w
	}

	return ws, nil
}
