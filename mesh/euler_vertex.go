package mesh

import (
	"fmt"
	"log/slog"
)

const (
	methodSplitVertex = "SplitVertex"
	methodJoinVertex  = "JoinVertex"
)

// SplitVertex splits the common origin v of e1 and e2 in two, joined by a
// new edge, and returns the new half-edge h running from v to the new vertex.
//
// The outgoing half-edges from e2 up to (but excluding) e1, in rotation
// order, move to the new vertex v', which takes v's position. h: v→v' is
// inserted before e2 in its facet and its opposite h': v'→v before e1 in its
// facet, so both facets gain one side.
//
// Counts: +1 vertex, +2 half-edges. JoinVertex(h) undoes the split exactly.
//
// Errors:
//   - ErrPreconditionViolation if e1 == e2, the origins differ, or the
//     rotation from e2 returns to e2 without meeting e1.
//   - ErrBorderElement if that rotation reaches a border.
func (m *Mesh) SplitVertex(e1, e2 EdgeID) (EdgeID, error) {
	// checked phase
	if e1 == e2 {
		return NoEdge, fmt.Errorf("%s(%d,%d): identical half-edges: %w", methodSplitVertex, e1, e2, ErrPreconditionViolation)
	}
	for _, e := range [...]EdgeID{e1, e2} {
		if !m.edges.has(int(e)) {
			return NoEdge, fmt.Errorf("%s(%d,%d): half-edge %d: %w", methodSplitVertex, e1, e2, e, ErrIdentityNotFound)
		}
	}
	v := m.he(e1).Origin
	if v != m.he(e2).Origin {
		return NoEdge, fmt.Errorf("%s(%d,%d): origins %d and %d differ: %w",
			methodSplitVertex, e1, e2, v, m.he(e2).Origin, ErrPreconditionViolation)
	}
	if !m.vertices.has(int(v)) {
		return NoEdge, fmt.Errorf("%s(%d,%d): origin %d: %w", methodSplitVertex, e1, e2, v, ErrMissingAdjacency)
	}
	moved, err := m.rotateUntil(e2, e1)
	if err != nil {
		return NoEdge, fmt.Errorf("%s(%d,%d): %w", methodSplitVertex, e1, e2, err)
	}
	f1, f2 := m.he(e1).Facet, m.he(e2).Facet
	for _, f := range [...]FacetID{f1, f2} {
		if !m.facets.has(int(f)) {
			return NoEdge, fmt.Errorf("%s(%d,%d): facet %d: %w", methodSplitVertex, e1, e2, f, ErrMissingAdjacency)
		}
	}
	pe1, err := m.PreviousEdge(e1)
	if err != nil {
		return NoEdge, fmt.Errorf("%s(%d,%d): %w", methodSplitVertex, e1, e2, err)
	}
	pe2, err := m.PreviousEdge(e2)
	if err != nil {
		return NoEdge, fmt.Errorf("%s(%d,%d): %w", methodSplitVertex, e1, e2, err)
	}

	// mutation phase
	w := m.AddVertex(m.vx(v).Position)
	h := m.newEdge(v, f2)
	hw := m.newEdge(w, f1)
	m.he(h).Opposite, m.he(hw).Opposite = hw, h
	m.he(h).Next, m.he(hw).Next = e2, e1
	m.he(pe2).Next = h
	m.he(pe1).Next = hw
	for _, s := range moved {
		m.he(s).Origin = w
	}
	m.vx(w).Edge = e2
	m.vx(v).Edge = e1

	m.logEdit(methodSplitVertex, slog.Int("e1", int(e1)), slog.Int("e2", int(e2)), slog.Int("vertex", int(w)))
	return h, nil
}

// JoinVertex contracts e, merging its destination into its origin, and
// returns the surviving origin. The survivor moves to the midpoint of the
// two endpoints; e, its opposite and the destination vertex are removed and
// both facets beside e lose one side.
//
// Counts: −1 vertex, −2 half-edges.
//
// Errors:
//   - ErrBorderElement if e has no opposite or the rotation around the
//     destination is not closed.
//   - ErrPreconditionViolation if e is a self-loop, both sides lie in one
//     facet, or either facet has degree < 3.
func (m *Mesh) JoinVertex(e EdgeID) (VertexID, error) {
	// checked phase
	if !m.edges.has(int(e)) {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodJoinVertex, e, ErrIdentityNotFound)
	}
	o := m.he(e).Opposite
	if o == NoEdge {
		return NoVertex, fmt.Errorf("%s(%d): no opposite: %w", methodJoinVertex, e, ErrBorderElement)
	}
	if !m.edges.has(int(o)) {
		return NoVertex, fmt.Errorf("%s(%d): opposite %d: %w", methodJoinVertex, e, o, ErrMissingAdjacency)
	}
	u, w := m.he(e).Origin, m.he(o).Origin
	for _, v := range [...]VertexID{u, w} {
		if !m.vertices.has(int(v)) {
			return NoVertex, fmt.Errorf("%s(%d): vertex %d: %w", methodJoinVertex, e, v, ErrMissingAdjacency)
		}
	}
	if u == w {
		return NoVertex, fmt.Errorf("%s(%d): self-loop at %d: %w", methodJoinVertex, e, u, ErrPreconditionViolation)
	}
	fe, fo := m.he(e).Facet, m.he(o).Facet
	for _, f := range [...]FacetID{fe, fo} {
		if !m.facets.has(int(f)) {
			return NoVertex, fmt.Errorf("%s(%d): facet %d: %w", methodJoinVertex, e, f, ErrMissingAdjacency)
		}
	}
	if fe == fo {
		return NoVertex, fmt.Errorf("%s(%d): both sides in facet %d: %w", methodJoinVertex, e, fe, ErrPreconditionViolation)
	}
	le, err := m.loop(e)
	if err != nil {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodJoinVertex, e, err)
	}
	lo, err := m.loop(o)
	if err != nil {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodJoinVertex, e, err)
	}
	if len(le) < 3 || len(lo) < 3 {
		return NoVertex, fmt.Errorf("%s(%d): facet degrees %d and %d, want >= 3: %w",
			methodJoinVertex, e, len(le), len(lo), ErrPreconditionViolation)
	}
	fan, err := m.fan(o)
	if err != nil {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodJoinVertex, e, err)
	}
	ne, pe := le[1], le[len(le)-1]
	no, po := lo[1], lo[len(lo)-1]

	// mutation phase
	for _, s := range fan[1:] {
		m.he(s).Origin = u
	}
	m.he(pe).Next = ne
	m.he(po).Next = no
	if m.fc(fe).Edge == e {
		m.fc(fe).Edge = ne
	}
	if m.fc(fo).Edge == o {
		m.fc(fo).Edge = no
	}
	mid := m.vx(u).Position.Add(m.vx(w).Position).Mul(0.5)
	m.vx(u).Position = mid
	m.vx(u).Edge = no
	m.edges.release(int(e))
	m.edges.release(int(o))
	m.vertices.release(int(w))

	m.logEdit(methodJoinVertex, slog.Int("edge", int(e)), slog.Int("vertex", int(u)), slog.Int("removed", int(w)))
	return u, nil
}

// rotateUntil rotates from start and returns the half-edges visited before
// stop is reached. It fails with ErrPreconditionViolation when the rotation
// closes without meeting stop.
func (m *Mesh) rotateUntil(start, stop EdgeID) ([]EdgeID, error) {
	var out []EdgeID
	for s := start; s != stop; {
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
			return nil, fmt.Errorf("%d not in the rotation of %d: %w", stop, start, ErrPreconditionViolation)
		}
		if len(out) >= m.edges.count {
			return nil, fmt.Errorf("rotation of %d does not close: %w", start, ErrMissingAdjacency)
		}
	}
	return out, nil
}
