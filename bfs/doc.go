// Package bfs walks a core.Graph breadth-first along outgoing records.
//
// The walk reports visit order, hop depth and the BFS-tree parent of every
// vertex reached from a start vertex. It is used to describe how far each
// node's influence can travel before a diffusion run spends iterations on it:
// a vertex that cannot reach another one never moves that vertex's state.
//
// Determinism
//
//	core.Graph.Successors yields targets in the order their first record was
//	added, and the walk enqueues them in that order, so the visit sequence is
//	reproducible for a given graph.
//
// Hooks
//
//   - OnEnqueue fires when a vertex is first discovered.
//   - OnDequeue fires just before a vertex is visited.
//   - OnVisit fires on visit and may abort the walk with an error.
//   - WithFilterNeighbor prunes individual hops.
//   - WithMaxDepth bounds the hop count (0 means unbounded).
//
// Complexity (V = vertices, E = records)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
