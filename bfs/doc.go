// Package bfs provides breadth-first search over the facet dual graph of a
// mesh.Mesh, returning facet distances, parent links, and visit order.
//
// What
//
//   - Two facets are adjacent when one holds a half-edge e and the other holds
//     opposite(e). Border half-edges (no opposite) connect nothing.
//   - BFS explores facets in non-decreasing dual distance from a start facet
//     and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: facet → number of shared edges crossed from the start
//   - Parent: facet → its predecessor in the BFS tree
//   - Components partitions all live facets into dual-connected groups.
//   - Hooks run at three stages: OnEnqueue, OnDequeue and OnVisit (which may
//     abort with an error).
//
// Determinism
//
//	mesh.FacetNeighbors returns neighbours in ascending handle order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (F = |Facets|, E = |Half-edges|)
//
//   - Time:   O(F + E)
//   - Memory: O(F)
//
// Usage
//
//	res, err := bfs.BFS(m, start,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(f mesh.FacetID, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrMeshNil             if the mesh pointer is nil.
//   - ErrStartFacetNotFound  if the start facet is not live.
//   - ErrOptionViolation     for an invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors           if a facet loop cannot be walked.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
