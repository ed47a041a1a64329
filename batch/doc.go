// SPDX-License-Identifier: MIT

// Package batch scores every vertex of a network as an Alpha and writes the
// results of whole input folders.
//
// EvaluateAll dispatches one task per Alpha onto a bounded errgroup; tasks
// share nothing but the read-only support.Evaluator. A failed Alpha is kept in
// its Result.Err and never cancels its siblings. Only context cancellation
// stops the pool early.
//
// Runner adds the file layer: load an edge list, evaluate it, write
// <name>.csv into the parameter-named folder, keep params.yaml current and
// optionally record rows in SQLite.
package batch
