// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"path/filepath"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/ctxlog"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/watch"
)

// Watch processes the input folder once, then every edge list that is written
// into it, until ctx is canceled. notify, when non-nil, receives the outcome
// of each file processed after the initial pass.
func (r *Runner) Watch(ctx context.Context, notify func(FileReport, error)) error {
	logger := ctxlog.FromContext(ctx)

	// Start watching first so files landing during the initial pass are seen.
	w, err := watch.NewWatcher(r.cfg.Input, r.cfg.Debounce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	if _, err := r.ProcessDir(ctx); err != nil && ctx.Err() == nil {
		logger.Warn("initial pass incomplete", "err", err)
	}
	logger.Info("watching", "dir", r.cfg.Input, "debounce", r.cfg.Debounce)

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if c.Kind == watch.ChangeRemoved {
				logger.Info("input removed", "file", filepath.Base(c.File))
				if err := r.Forget(c.File); err != nil {
					logger.Warn("manifest update failed", "err", err)
				}
				continue
			}

			rep, err := r.ProcessFile(ctx, c.File)
			if err != nil {
				logger.Error("file failed", "file", filepath.Base(c.File), "err", err)
			}
			if notify != nil {
				notify(rep, err)
			}
		}
	}
}
