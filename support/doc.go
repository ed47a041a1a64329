// SPDX-License-Identifier: MIT

// Package support turns diffusion rounds into a signed support score for one
// reference (Alpha) vertex.
//
// Evaluator.Evaluate seeds the Alpha at +1, runs one anchored round per target
// in order (skipping the Alpha itself) and carries each round's final state
// into the next. Total then counts, over every vertex except the Alpha, +1 for a
// positive state and -1 for a negative one.
//
// The target loop is strictly sequential. Different Alphas share nothing and
// may be evaluated concurrently on the same Evaluator.
package support
