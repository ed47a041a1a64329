// SPDX-License-Identifier: MIT

// Package builder provides deterministic network constructors used as test
// fixtures and by the `generate` command.
//
// The package offers:
//
//   - Constructor + BuildGraph: compose topologies onto a fresh core.Graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), AlphanumericIDFn, HexIDFn,
//     SymbolNumberIDFn(prefix).
//   - Edge-weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//   - ByKind: resolves a topology by name for command-line use.
//
// Every link is emitted in both directions with the same weight unless
// WithDirected is set, mirroring the direction flag 0 of the edge-list format.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical vertex order and edge records.
//   - Option constructors panic on meaningless values; constructors never panic
//     and return the sentinels of errors.go.
package builder
