// Package multibeta ranks the nodes of directed weighted networks by how much
// support each one can win in a competitive opinion-diffusion game.
//
// Every node in turn plays Alpha: its state is pinned at +1 while, for each
// other node, a fresh set of opposing anchors pinned at -1 is wired to that
// target and the network iterates a bounded consensus update until it settles.
// The number of nodes that end up positive minus those that end up negative is
// the Alpha's total support.
//
// Packages
//
//   - core:      thread-safe directed multigraph of edge records.
//   - edgelist:  tab-separated edge-list reader and writer.
//   - matrix:    dense adjacency over a fixed node order plus anchor slots.
//   - diffusion: anchor injection and the synchronous update loop.
//   - support:   per-Alpha evaluation and the support tally.
//   - batch:     parallel evaluation of every Alpha and folder processing.
//   - builder:   synthetic topologies for experiments and tests.
//   - bfs:       reachability summaries used by the inspect command.
//
// The multibeta command (cmd/multibeta) drives batch runs, folder watching,
// network inspection and synthetic network generation; see its --help output.
package multibeta
