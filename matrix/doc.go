// Package matrix provides the dense adjacency representation consumed by the
// diffusion engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set/Add.
//   - Adjacency: A[i,j] = summed weight of all edge records i→j over a fixed
//     node order, plus the in-neighbor index In[j] = {i : some record i→j}.
//   - An index-only arena: WithArena(k) reserves k extra rows/columns after the
//     named vertices. Arena slots have no string ID, so synthetic vertices can
//     never collide with (or be looked up as) a real vertex.
//
// Matrices are O(V²) memory and O(V² + E) to build; every Adjacency is a
// fresh allocation and nothing is shared between builds.
package matrix
