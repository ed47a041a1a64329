// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge record operations.
// Policy:
//   - Every AddEdge call stores a new record; nothing is merged here.
//   - Endpoints are auto-added to the vertex order (from before to).

package core

import (
	"fmt"
	"math"
)

const edgeIDPrefix = "e"

// AddEdge appends a directed edge record from→to with weight w and returns its ID.
//
// Implementation:
//   - Stage 1: validate IDs and weight.
//   - Stage 2: ensure both endpoints exist (from first, then to).
//   - Stage 3: append the record and index it by source.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return "", fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints, in first-seen order
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Store the record
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.outgoing[from] = append(g.outgoing[from], len(g.edges))
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: w})

	return eid, nil
}

// AddBidirectional stores a→b and b→a with the same weight.
// Complexity: O(1) amortized.
func (g *Graph) AddBidirectional(a, b string, w float64) error {
	if _, err := g.AddEdge(a, b, w); err != nil {
		return err
	}
	_, err := g.AddEdge(b, a, w)

	return err
}

// Edges returns a copy of all edge records in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edge records (parallel records included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Successors returns the distinct targets of id's outgoing records,
// in the order their first record was added.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(out-degree).
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("Successors(%q): %w", id, ErrVertexNotFound)
	}
	positions := g.outgoing[id]
	seen := make(map[string]struct{}, len(positions))
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		to := g.edges[p].To
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}

	return out, nil
}
