// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/edgelist"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/config"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/ctxlog"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/report"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/watch"
)

// FileReport is the outcome of one input network.
type FileReport struct {
	File    string
	CSV     string
	Rows    []report.Row
	Failed  []Result
	Summary report.FileSummary
}

// Runner processes edge-list files with one configuration.
type Runner struct {
	cfg    config.Config
	outDir string
	store  *report.Store

	mu    sync.Mutex
	files map[string]report.FileSummary
	now   func() time.Time
}

// NewRunner validates cfg, creates the parameter-named output folder and opens
// the SQLite store when cfg.SQLite is set.
func NewRunner(ctx context.Context, cfg config.Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	outDir := report.Folder(cfg.Output, cfg.Params)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: output folder: %w", err)
	}

	r := &Runner{
		cfg:    cfg,
		outDir: outDir,
		files:  make(map[string]report.FileSummary),
		now:    time.Now,
	}
	if cfg.SQLite != "" {
		st, err := report.OpenStore(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		r.store = st
	}

	return r, nil
}

// OutDir returns the folder the CSV files and the manifest are written to.
func (r *Runner) OutDir() string { return r.outDir }

// Params returns the diffusion parameters of the run.
func (r *Runner) Params() diffusion.Params { return r.cfg.Params }

// Close releases the SQLite store, if any.
func (r *Runner) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// ProcessFile loads one edge list, evaluates every Alpha and writes its CSV.
// A malformed file fails as a whole and writes nothing.
func (r *Runner) ProcessFile(ctx context.Context, path string) (FileReport, error) {
	logger := ctxlog.FromContext(ctx).With("file", filepath.Base(path))
	start := r.now()

	g, err := edgelist.ReadFile(path)
	if err != nil {
		return FileReport{}, fmt.Errorf("batch: %w", err)
	}
	logger.Info("processing", "nodes", g.VertexCount(), "edges", g.EdgeCount())

	results, err := EvaluateAll(ctx, g, r.cfg.Params, WithWorkers(r.cfg.Workers))
	if err != nil {
		return FileReport{}, fmt.Errorf("batch: %s: %w", path, err)
	}

	rep := FileReport{File: path, CSV: filepath.Join(r.outDir, report.CSVName(path))}
	for _, res := range results {
		if res.Err != nil {
			rep.Failed = append(rep.Failed, res)
			continue
		}
		rep.Rows = append(rep.Rows, report.Row{Alpha: res.Alpha, TotalSupport: res.Outcome.Total})
	}

	if err := report.WriteCSVFile(rep.CSV, rep.Rows); err != nil {
		return FileReport{}, err
	}
	if r.store != nil {
		if err := r.store.Save(ctx, filepath.Base(path), r.cfg.Params, rep.Rows); err != nil {
			return FileReport{}, err
		}
	}

	rep.Summary = report.FileSummary{
		Name:    filepath.Base(path),
		Nodes:   g.VertexCount(),
		Edges:   g.EdgeCount(),
		Failed:  len(rep.Failed),
		Elapsed: r.now().Sub(start),
	}
	if err := r.record(rep.Summary); err != nil {
		return FileReport{}, err
	}
	logger.Info("done", "csv", rep.CSV, "failed", len(rep.Failed), "elapsed", rep.Summary.Elapsed)

	return rep, nil
}

// ProcessDir runs ProcessFile on every edge list of the input folder in name
// order. A failing file is logged and skipped; the joined file errors are
// returned after the whole folder has been visited. Cancellation stops at the
// next file.
func (r *Runner) ProcessDir(ctx context.Context) ([]FileReport, error) {
	files, err := ListInputs(r.cfg.Input)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)

	var (
		reports []FileReport
		errs    []error
	)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		rep, err := r.ProcessFile(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return reports, ctxErr
			}
			logger.Error("file failed", "file", filepath.Base(path), "err", err)
			errs = append(errs, err)
			continue
		}
		reports = append(reports, rep)
	}

	return reports, errors.Join(errs...)
}

// ProcessDir is a one-shot run of cfg over its input folder.
func ProcessDir(ctx context.Context, cfg config.Config) ([]FileReport, error) {
	r, err := NewRunner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ProcessDir(ctx)
}

// ListInputs returns the edge-list files of dir sorted by name.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !watch.IsEdgeList(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// Forget drops the manifest entry of a removed input file.
func (r *Runner) Forget(path string) error {
	r.mu.Lock()
	delete(r.files, filepath.Base(path))
	r.mu.Unlock()

	return r.writeManifest()
}

func (r *Runner) record(s report.FileSummary) error {
	r.mu.Lock()
	r.files[s.Name] = s
	r.mu.Unlock()

	return r.writeManifest()
}

func (r *Runner) writeManifest() error {
	r.mu.Lock()
	m := report.Manifest{
		Params:    r.cfg.Params,
		Workers:   r.cfg.Workers,
		CreatedAt: r.now().UTC(),
		Files:     make([]report.FileSummary, 0, len(r.files)),
	}
	for _, s := range r.files {
		m.Files = append(m.Files, s)
	}
	r.mu.Unlock()

	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Name < m.Files[j].Name })

	return report.WriteManifest(filepath.Join(r.outDir, report.ManifestName), m)
}
