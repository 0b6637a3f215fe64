package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polymesh/mesh"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartFacetNotFound is returned when the start facet is not live.
	ErrStartFacetNotFound = errors.New("bfs: start facet not found")

	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("bfs: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a facet the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a facet is enqueued, before visiting.
	OnEnqueue func(f mesh.FacetID, depth int)

	// OnDequeue is called immediately before visiting a facet.
	OnDequeue func(f mesh.FacetID, depth int)

	// OnVisit is called when visiting a facet. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(f mesh.FacetID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a dual edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor mesh.FacetID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbours allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(mesh.FacetID, int) {},
		OnDequeue:      func(mesh.FacetID, int) {},
		OnVisit:        func(mesh.FacetID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ mesh.FacetID) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(f mesh.FacetID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(f mesh.FacetID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(f mesh.FacetID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor mesh.FacetID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: facets visited, in visit sequence.
//   - Depth: facet → number of shared edges crossed from the start.
//   - Parent: facet → its predecessor in the BFS tree.
type BFSResult struct {
	Order  []mesh.FacetID
	Depth  map[mesh.FacetID]int
	Parent map[mesh.FacetID]mesh.FacetID
}

// PathTo reconstructs the facet path from the start facet to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest mesh.FacetID) ([]mesh.FacetID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to facet %d", ErrNoPath, dest)
	}
	path := []mesh.FacetID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
