// SPDX-License-Identifier: MIT

// Package core provides the ordered, weighted, directed multigraph that every
// other package in this module reads from.
//
// The Graph G = (V,E) keeps two properties the diffusion pipeline relies on:
//
//   - Stable vertex order: vertices are indexed in order of first appearance
//     (AddVertex, or the from/to endpoints of AddEdge). That order defines the
//     index space 0..n-1 used by the adjacency matrix and the state vectors.
//   - Edge records are never merged: two AddEdge calls with the same endpoints
//     produce two Edge records. Summing parallel weights is the job of the
//     adjacency builder (package matrix), not of the graph.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1) amortized, idempotent
//	HasVertex(id string) bool            // O(1)
//	IndexOf(id string) (int, error)      // O(1), ErrVertexNotFound
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (edgeID string, err error) // O(1) amortized
//	AddBidirectional(a, b string, w float64) error                  // two records
//
//	// Query
//	Vertices() []string                  // O(V), insertion order
//	Edges() []Edge                       // O(E), insertion order
//	Successors(id string) ([]string, error)
//	Degree(id string) (in, out int, err error)
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog. Readers (the per-Alpha workers in
//	package batch) share one Graph without copying it.
package core
