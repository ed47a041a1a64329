// SPDX-License-Identifier: MIT

// Package diffusion runs the anchored opinion-diffusion rounds used to score
// network support.
//
// One round:
//
//  1. Injector.Inject builds a fresh scratch space: the base adjacency plus k
//     anchor slots (index-only arena, states pinned to -1), each wired with a
//     weight-1 edge onto a single target vertex.
//  2. Run iterates
//
//     x'[u] = clip(x[u] + ε·Σ_{v∈In(u)} A[v,u]·(x[v]-x[u])
//     + δ·Σ_i W[u][i]·(x[anchor_i]-x[u]), min, max)
//
//     for every non-fixed u, reading only the previous snapshot, until
//     ‖x'-x‖₂ < Tol or MaxIter iterations have run.
//
// Nothing survives a round except the returned state of the named vertices:
// anchors and their edges are rebuilt from scratch for the next target.
package diffusion
