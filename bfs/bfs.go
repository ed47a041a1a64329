// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/core"
)

// frontierItem pairs a vertex with its hop depth.
type frontierItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one walk.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []frontierItem
	res   *BFSResult
}

// BFS walks g from startID along outgoing records.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound.
//   - ctx.Err() on cancellation; a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS(%q): %w", startID, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]frontierItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, 0, "")

	return w.res, w.loop()
}

// discover marks id reached at depth d and queues it.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, frontierItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every unseen, unfiltered successor within MaxDepth.
func (w *walker) expand(item frontierItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	succ, err := w.graph.Successors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: successors of %q: %w", item.id, err)
	}
	for _, nbr := range succ {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.discover(nbr, next, item.id)
	}

	return nil
}

// Reach walks from every vertex of g in insertion order and returns the
// walks keyed by start vertex.
func Reach(ctx context.Context, g *core.Graph) (map[string]*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(map[string]*BFSResult, g.VertexCount())
	for _, id := range g.Vertices() {
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		out[id] = res
	}

	return out, nil
}
