// SPDX-License-Identifier: MIT

package diffusion

// RunOption configures Run via functional arguments.
type RunOption func(*RunOptions)

// RunOptions holds optional hooks for Run.
type RunOptions struct {
	// OnIteration is called after every iteration with the 1-based iteration
	// number and the full new state (named vertices then anchors). The slice
	// is reused by the next iteration; copy it to retain values.
	OnIteration func(iter int, x []float64)
}

// DefaultRunOptions returns RunOptions with a no-op hook.
func DefaultRunOptions() RunOptions {
	return RunOptions{OnIteration: func(int, []float64) {}}
}

// WithOnIteration registers an iteration hook. A nil fn is ignored.
func WithOnIteration(fn func(iter int, x []float64)) RunOption {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}
