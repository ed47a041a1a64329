// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the adjacency builder.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Invalid values are recorded and surfaced as ErrBadShape by the builder,
//     never by panicking inside the option.
package matrix

import "fmt"

// Option configures BuildAdjacency.
type Option func(*Options)

// Options holds the resolved adjacency build configuration.
type Options struct {
	arena int   // extra unnamed slots appended after the named vertices
	err   error // first invalid option, reported by the builder
}

// WithArena reserves k index-only slots after the named vertices.
// k < 0 is recorded as ErrBadShape.
func WithArena(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("WithArena(%d): %w", k, ErrBadShape)
			return
		}
		o.arena = k
	}
}

// gatherOptions applies opts in order over the defaults (no arena).
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
