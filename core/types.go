// SPDX-License-Identifier: MIT

// Package core declares Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - edge weight is NaN or ±Inf.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is one directed, weighted edge record.
//
// Parallel records between the same ordered pair are kept apart; their
// weights are summed only when an adjacency matrix is built.
type Edge struct {
	// ID uniquely identifies this record in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the influence strength of From on To.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and edge catalogs.
// Negative hints are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertexHint = vertices
		}
		if edges > 0 {
			g.edgeHint = edges
		}
	}
}

// Graph is an ordered directed multigraph with float64 weights.
//
// order holds vertex IDs in first-seen order and index is its inverse.
// edges holds every edge record in insertion order; outgoing maps a source
// vertex to positions in edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	order    []string         // index → vertex ID
	index    map[string]int   // vertex ID → index
	edges    []Edge           // all edge records, insertion order
	outgoing map[string][]int // source ID → positions in edges

	nextEdgeID uint64 // monotonic edge ID counter (guarded by mu)

	vertexHint int // construction-time capacity hints
	edgeHint   int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any capacity hint allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.order = make([]string, 0, g.vertexHint)
	g.index = make(map[string]int, g.vertexHint)
	g.edges = make([]Edge, 0, g.edgeHint)
	g.outgoing = make(map[string][]int, g.vertexHint)

	return g
}
