// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex catalog operations.
// Determinism:
//   - Vertices() always returns first-seen order; it never sorts.

package core

import "fmt"

// AddVertex inserts a vertex with the given ID at the end of the vertex order.
// Re-adding an existing ID is a no-op and does not move it.
//
// Errors:
//   - ErrEmptyVertexID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked appends id when unseen. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the position of id in the vertex order.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the ID).
//
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("IndexOf(%q): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// Vertices returns a copy of the vertex IDs in first-seen order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of incoming and outgoing edge records of id.
// Parallel records count separately; a self-loop counts once on each side.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(E) for the in-degree scan.
func (g *Graph) Degree(id string) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.index[id]; !ok {
		return 0, 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}
	out = len(g.outgoing[id])
	for i := range g.edges {
		if g.edges[i].To == id {
			in++
		}
	}

	return in, out, nil
}
