// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/ctxlog"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/support"
)

// Result is the evaluation of one Alpha.
type Result struct {
	Alpha   string
	Outcome support.Outcome
	// Err is non-nil when this Alpha failed (unknown vertex, non-finite state).
	Err error
}

// EvaluateAll scores every vertex of g as an Alpha.
//
// Results are returned in vertex order regardless of completion order. The
// returned error is non-nil only for invalid parameters or when ctx is
// canceled; in the latter case Alphas that never ran carry ctx.Err().
func EvaluateAll(ctx context.Context, g *core.Graph, p diffusion.Params, opts ...Option) ([]Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ev, err := support.NewEvaluator(g, p)
	if err != nil {
		return nil, fmt.Errorf("EvaluateAll: %w", err)
	}
	order := ev.Order()
	total := len(order)
	results := make([]Result, total)
	for i, alpha := range order {
		results[i] = Result{Alpha: alpha}
	}

	logger := ctxlog.FromContext(ctx)
	step := total / 10
	if step < 1 {
		step = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	var done atomic.Int64

	for i, alpha := range order {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			out, err := ev.Evaluate(alpha, nil)
			results[i].Outcome = out
			results[i].Err = err
			if err != nil {
				logger.Warn("alpha failed", "alpha", alpha, "err", err)
			}

			n := int(done.Add(1))
			o.progress(n, total)
			if n%step == 0 || n == total {
				logger.Info("progress", "done", n, "total", total)
			}

			return nil
		})
	}

	waitErr := eg.Wait()
	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Err == nil && results[i].Outcome.Alpha == "" {
				results[i].Err = err
			}
		}
		return results, err
	}

	return results, waitErr
}
