// SPDX-License-Identifier: MIT

package batch

import "runtime"

// ProgressFunc is invoked after each finished Alpha with the number of finished
// Alphas and the total. Calls may come from several goroutines.
type ProgressFunc func(done, total int)

// Option configures EvaluateAll.
type Option func(*options)

type options struct {
	workers  int
	progress ProgressFunc
}

func defaultOptions() options {
	return options{workers: runtime.NumCPU(), progress: func(int, int) {}}
}

// WithWorkers bounds the number of concurrent Alpha evaluations.
// n <= 0 keeps the default of one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.progress = fn
		}
	}
}
