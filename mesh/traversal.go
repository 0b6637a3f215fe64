// Package mesh: traversal kernel.
//
// Two walks underlie everything here:
//
//	loop(e) follows next from e until e recurs (the facet boundary).
//	fan(s)  rotates r(s) = next(opposite(s)) from s until s recurs
//	        (the outgoing half-edges of origin(s)).
//
// Both are bounded by the live half-edge count, so a corrupted cycle is
// reported as ErrMissingAdjacency instead of looping forever.

package mesh

import (
	"fmt"
	"math"
)

const (
	methodFacetDegree    = "FacetDegree"
	methodVertexDegree   = "VertexDegree"
	methodCenterPosition = "CenterPosition"
	methodFacetArea      = "FacetArea"
	methodPreviousEdge   = "PreviousEdge"
	methodDestination    = "Destination"
	methodFacetEdges     = "FacetEdges"
	methodVertexFan      = "VertexFan"
	methodFacetNeighbors = "FacetNeighbors"
)

// FacetDegree returns the number of half-edges on the boundary loop of f.
// Complexity: O(d).
func (m *Mesh) FacetDegree(f FacetID) (int, error) {
	loop, err := m.facetLoop(f)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodFacetDegree, f, err)
	}
	return len(loop), nil
}

// VertexDegree returns the number of outgoing half-edges of v, counted by
// rotating around v. A walk that reaches a missing opposite or next fails
// with ErrBorderElement; a vertex without an incident edge fails with
// ErrMissingAdjacency.
func (m *Mesh) VertexDegree(v VertexID) (int, error) {
	fan, err := m.vertexFan(v)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodVertexDegree, v, err)
	}
	return len(fan), nil
}

// CenterPosition returns the arithmetic mean of the origin positions on the
// loop containing e.
func (m *Mesh) CenterPosition(e EdgeID) (Position, error) {
	pts, err := m.loopPositions(e)
	if err != nil {
		return Position{}, fmt.Errorf("%s(%d): %w", methodCenterPosition, e, err)
	}
	return centroid(pts), nil
}

// FacetArea returns the unsigned shoelace area of the loop containing e,
// closing term included. The result does not depend on orientation.
func (m *Mesh) FacetArea(e EdgeID) (float64, error) {
	pts, err := m.loopPositions(e)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodFacetArea, e, err)
	}
	var twice float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		twice += p.X*q.Y - p.Y*q.X
	}
	return math.Abs(twice) / 2, nil
}

// PreviousEdge returns the half-edge whose next is e. A loop of length one
// yields e itself. Complexity: O(d).
func (m *Mesh) PreviousEdge(e EdgeID) (EdgeID, error) {
	loop, err := m.loop(e)
	if err != nil {
		return NoEdge, fmt.Errorf("%s(%d): %w", methodPreviousEdge, e, err)
	}
	return loop[len(loop)-1], nil
}

// Destination returns the vertex e points to, i.e. the origin of next(e).
func (m *Mesh) Destination(e EdgeID) (VertexID, error) {
	if !m.edges.has(int(e)) {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodDestination, e, ErrIdentityNotFound)
	}
	n := m.he(e).Next
	if !m.edges.has(int(n)) {
		return NoVertex, fmt.Errorf("%s(%d): next %d: %w", methodDestination, e, n, ErrMissingAdjacency)
	}
	d := m.he(n).Origin
	if !m.vertices.has(int(d)) {
		return NoVertex, fmt.Errorf("%s(%d): origin %d of next: %w", methodDestination, e, d, ErrMissingAdjacency)
	}
	return d, nil
}

// FacetEdges returns the boundary loop of f in next order, starting at the
// facet's boundary edge.
func (m *Mesh) FacetEdges(f FacetID) ([]EdgeID, error) {
	loop, err := m.facetLoop(f)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodFacetEdges, f, err)
	}
	return loop, nil
}

// FacetVertices returns the origins of FacetEdges(f), in the same order.
func (m *Mesh) FacetVertices(f FacetID) ([]VertexID, error) {
	loop, err := m.FacetEdges(f)
	if err != nil {
		return nil, err
	}
	vs := make([]VertexID, len(loop))
	for i, e := range loop {
		v := m.he(e).Origin
		if !m.vertices.has(int(v)) {
			return nil, fmt.Errorf("%s(%d): origin %d of %d: %w", methodFacetEdges, f, v, e, ErrMissingAdjacency)
		}
		vs[i] = v
	}
	return vs, nil
}

// FacetPositions returns the positions of FacetVertices(f), in order. This is
// the polygon a renderer or exporter draws for f.
func (m *Mesh) FacetPositions(f FacetID) ([]Position, error) {
	vs, err := m.FacetVertices(f)
	if err != nil {
		return nil, err
	}
	pts := make([]Position, len(vs))
	for i, v := range vs {
		pts[i] = m.vx(v).Position
	}
	return pts, nil
}

// VertexFan returns the outgoing half-edges of v in rotation order, starting
// at v's incident edge. Errors as VertexDegree.
func (m *Mesh) VertexFan(v VertexID) ([]EdgeID, error) {
	fan, err := m.vertexFan(v)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodVertexFan, v, err)
	}
	return fan, nil
}

// FacetNeighbors returns, in ascending order, the distinct facets other than
// f reached through a paired half-edge of f's loop: the dual-graph
// neighbours of f. Unpaired (border) half-edges are skipped.
func (m *Mesh) FacetNeighbors(f FacetID) ([]FacetID, error) {
	loop, err := m.facetLoop(f)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodFacetNeighbors, f, err)
	}
	seen := make(map[FacetID]struct{}, len(loop))
	out := make([]FacetID, 0, len(loop))
	for _, e := range loop {
		o := m.he(e).Opposite
		if !m.edges.has(int(o)) {
			continue
		}
		g := m.he(o).Facet
		if g == f || !m.facets.has(int(g)) {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sortFacets(out)

	return out, nil
}

// loop walks next from e until e recurs.
func (m *Mesh) loop(e EdgeID) ([]EdgeID, error) {
	if !m.edges.has(int(e)) {
		return nil, fmt.Errorf("half-edge %d: %w", e, ErrIdentityNotFound)
	}
	out := []EdgeID{e}
	for cur := m.he(e).Next; cur != e; cur = m.he(cur).Next {
		if !m.edges.has(int(cur)) {
			return nil, fmt.Errorf("loop of %d: next %d: %w", e, cur, ErrMissingAdjacency)
		}
		if len(out) >= m.edges.count {
			return nil, fmt.Errorf("loop of %d does not close: %w", e, ErrMissingAdjacency)
		}
		out = append(out, cur)
	}
	return out, nil
}

// facetLoop resolves f and walks its boundary loop.
func (m *Mesh) facetLoop(f FacetID) ([]EdgeID, error) {
	if !m.facets.has(int(f)) {
		return nil, fmt.Errorf("facet %d: %w", f, ErrIdentityNotFound)
	}
	e := m.fc(f).Edge
	if !m.edges.has(int(e)) {
		return nil, fmt.Errorf("facet %d: boundary edge %d: %w", f, e, ErrMissingAdjacency)
	}
	return m.loop(e)
}

// fan rotates r(s) = next(opposite(s)) from start until start recurs.
func (m *Mesh) fan(start EdgeID) ([]EdgeID, error) {
	if !m.edges.has(int(start)) {
		return nil, fmt.Errorf("half-edge %d: %w", start, ErrIdentityNotFound)
	}
	out := []EdgeID{}
	for s := start; ; {
		out = append(out, s)
		o := m.he(s).Opposite
		if o == NoEdge {
			return nil, fmt.Errorf("half-edge %d has no opposite: %w", s, ErrBorderElement)
		}
		if !m.edges.has(int(o)) {
			return nil, fmt.Errorf("opposite %d of %d: %w", o, s, ErrMissingAdjacency)
		}
		n := m.he(o).Next
		if n == NoEdge {
			return nil, fmt.Errorf("half-edge %d has no next: %w", o, ErrBorderElement)
		}
		if !m.edges.has(int(n)) {
			return nil, fmt.Errorf("next %d of %d: %w", n, o, ErrMissingAdjacency)
		}
		if s = n; s == start {
			return out, nil
		}
		if len(out) >= m.edges.count {
			return nil, fmt.Errorf("fan of %d does not close: %w", start, ErrMissingAdjacency)
		}
	}
}

// vertexFan resolves v and rotates around it.
func (m *Mesh) vertexFan(v VertexID) ([]EdgeID, error) {
	if !m.vertices.has(int(v)) {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrIdentityNotFound)
	}
	e := m.vx(v).Edge
	if e == NoEdge || !m.edges.has(int(e)) {
		return nil, fmt.Errorf("vertex %d: incident edge %d: %w", v, e, ErrMissingAdjacency)
	}
	return m.fan(e)
}

// loopPositions returns the origin positions along the loop of e.
func (m *Mesh) loopPositions(e EdgeID) ([]Position, error) {
	loop, err := m.loop(e)
	if err != nil {
		return nil, err
	}
	pts := make([]Position, len(loop))
	for i, h := range loop {
		v := m.he(h).Origin
		if !m.vertices.has(int(v)) {
			return nil, fmt.Errorf("origin %d of %d: %w", v, h, ErrMissingAdjacency)
		}
		pts[i] = m.vx(v).Position
	}
	return pts, nil
}

func centroid(pts []Position) Position {
	var sum Position
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}
