package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/polymesh/mesh"
)

// ErrNeighbors is returned when resolving a facet's neighbours fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a facet with its BFS depth.
type queueItem struct {
	id    mesh.FacetID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	mesh    *mesh.Mesh
	opts    BFSOptions
	ctx     context.Context
	queue   *arrayqueue.Queue // of queueItem
	visited map[mesh.FacetID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on the dual graph of m starting from start.
// Returns ErrMeshNil or ErrStartFacetNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for broken facet loops,
// the context error on cancellation, or any OnVisit error.
//
// Complexity: O(F + E) with E half-edges.
func BFS(m *mesh.Mesh, start mesh.FacetID, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.HasFacet(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartFacetNotFound, start)
	}

	n := m.FacetCount()
	w := &walker{
		mesh:    m,
		opts:    o,
		ctx:     o.Ctx,
		queue:   arrayqueue.New(),
		visited: make(map[mesh.FacetID]bool, n),
		res: &BFSResult{
			Order:  make([]mesh.FacetID, 0, n),
			Depth:  make(map[mesh.FacetID]int, n),
			Parent: make(map[mesh.FacetID]mesh.FacetID, n),
		},
	}

	w.enqueue(start, 0, mesh.NoFacet)
	return w.res, w.loop()
}

// Components partitions the live facets of m into dual-connected
// components. Components are ordered by their smallest facet; each lists
// its facets in BFS order from that facet.
func Components(m *mesh.Mesh) ([][]mesh.FacetID, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	seen := make(map[mesh.FacetID]bool, m.FacetCount())
	var out [][]mesh.FacetID
	for _, f := range m.Facets() {
		if seen[f] {
			continue
		}
		res, err := BFS(m, f)
		if err != nil {
			return nil, err
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// enqueue marks f visited at depth d, records its parent and queues it.
func (w *walker) enqueue(f mesh.FacetID, d int, parent mesh.FacetID) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if parent != mesh.NoFacet {
		w.res.Parent[f] = parent
	}
	w.opts.OnEnqueue(f, d)
	w.queue.Enqueue(queueItem{id: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	v, _ := w.queue.Dequeue()
	item := v.(queueItem)
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the facet in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at facet %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every unseen
// dual neighbour, in ascending facet order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.mesh.FacetNeighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: facet %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
