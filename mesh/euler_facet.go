package mesh

import (
	"fmt"
	"log/slog"
)

const (
	methodSplitFacet = "SplitFacet"
	methodJoinFacet  = "JoinFacet"
)

// SplitFacet cuts the facet containing e1 and e2 along a new edge from
// dst(e1) to dst(e2), and returns the half-edge of that edge that stays in
// the original facet.
//
// The new pair is h1: dst(e1)→dst(e2), inserted after e1 in the original
// facet, and h2: dst(e2)→dst(e1), inserted after e2 in a new facet. The
// original facet keeps e1 as boundary edge, the new one gets e2.
//
// Counts: +2 half-edges, +1 facet. JoinFacet(h1) undoes the split.
// Errors: ErrPreconditionViolation if e1 == e2 or they lie in different facets.
func (m *Mesh) SplitFacet(e1, e2 EdgeID) (EdgeID, error) {
	// checked phase
	if e1 == e2 {
		return NoEdge, fmt.Errorf("%s(%d,%d): identical half-edges: %w", methodSplitFacet, e1, e2, ErrPreconditionViolation)
	}
	for _, e := range [...]EdgeID{e1, e2} {
		if !m.edges.has(int(e)) {
			return NoEdge, fmt.Errorf("%s(%d,%d): half-edge %d: %w", methodSplitFacet, e1, e2, e, ErrIdentityNotFound)
		}
	}
	f := m.he(e1).Facet
	if f != m.he(e2).Facet {
		return NoEdge, fmt.Errorf("%s(%d,%d): facets %d and %d differ: %w",
			methodSplitFacet, e1, e2, f, m.he(e2).Facet, ErrPreconditionViolation)
	}
	if !m.facets.has(int(f)) {
		return NoEdge, fmt.Errorf("%s(%d,%d): facet %d: %w", methodSplitFacet, e1, e2, f, ErrMissingAdjacency)
	}
	loop, err := m.loop(e1)
	if err != nil {
		return NoEdge, fmt.Errorf("%s(%d,%d): %w", methodSplitFacet, e1, e2, err)
	}
	if !containsEdge(loop, e2) {
		return NoEdge, fmt.Errorf("%s(%d,%d): %d not on the loop of %d: %w",
			methodSplitFacet, e1, e2, e2, e1, ErrPreconditionViolation)
	}
	n1, n2 := m.he(e1).Next, m.he(e2).Next
	v1, v2 := m.he(n1).Origin, m.he(n2).Origin
	for _, v := range [...]VertexID{v1, v2} {
		if !m.vertices.has(int(v)) {
			return NoEdge, fmt.Errorf("%s(%d,%d): vertex %d: %w", methodSplitFacet, e1, e2, v, ErrMissingAdjacency)
		}
	}

	// mutation phase
	g := m.newFacet()
	h1 := m.newEdge(v1, f)
	h2 := m.newEdge(v2, g)
	m.he(h1).Opposite, m.he(h2).Opposite = h2, h1
	m.he(h1).Next, m.he(h2).Next = n2, n1
	m.he(e1).Next, m.he(e2).Next = h1, h2
	m.relabel(e2, g)
	m.fc(f).Edge = e1
	m.fc(g).Edge = e2

	m.logEdit(methodSplitFacet, slog.Int("e1", int(e1)), slog.Int("e2", int(e2)), slog.Int("edge", int(h1)))
	return h1, nil
}

// JoinFacet removes e and its opposite, merging the two facets they separate.
// The facet of e survives and is returned; the facet of opposite(e) is removed.
//
// Counts: −2 half-edges, −1 facet.
// Errors: ErrBorderElement if e has no opposite; ErrPreconditionViolation if
// both sides lie in one facet or either facet has degree < 2.
func (m *Mesh) JoinFacet(e EdgeID) (FacetID, error) {
	// checked phase
	if !m.edges.has(int(e)) {
		return NoFacet, fmt.Errorf("%s(%d): %w", methodJoinFacet, e, ErrIdentityNotFound)
	}
	o := m.he(e).Opposite
	if o == NoEdge {
		return NoFacet, fmt.Errorf("%s(%d): no opposite: %w", methodJoinFacet, e, ErrBorderElement)
	}
	if !m.edges.has(int(o)) {
		return NoFacet, fmt.Errorf("%s(%d): opposite %d: %w", methodJoinFacet, e, o, ErrMissingAdjacency)
	}
	f, g := m.he(e).Facet, m.he(o).Facet
	for _, x := range [...]FacetID{f, g} {
		if !m.facets.has(int(x)) {
			return NoFacet, fmt.Errorf("%s(%d): facet %d: %w", methodJoinFacet, e, x, ErrMissingAdjacency)
		}
	}
	if f == g {
		return NoFacet, fmt.Errorf("%s(%d): both sides in facet %d: %w", methodJoinFacet, e, f, ErrPreconditionViolation)
	}
	le, err := m.loop(e)
	if err != nil {
		return NoFacet, fmt.Errorf("%s(%d): %w", methodJoinFacet, e, err)
	}
	lo, err := m.loop(o)
	if err != nil {
		return NoFacet, fmt.Errorf("%s(%d): %w", methodJoinFacet, e, err)
	}
	if len(le) < 2 || len(lo) < 2 {
		return NoFacet, fmt.Errorf("%s(%d): facet degrees %d and %d, want >= 2: %w",
			methodJoinFacet, e, len(le), len(lo), ErrPreconditionViolation)
	}
	ne, pe := le[1], le[len(le)-1]
	no, po := lo[1], lo[len(lo)-1]
	for _, v := range [...]VertexID{m.he(e).Origin, m.he(o).Origin} {
		if !m.vertices.has(int(v)) {
			return NoFacet, fmt.Errorf("%s(%d): vertex %d: %w", methodJoinFacet, e, v, ErrMissingAdjacency)
		}
	}

	// mutation phase
	m.he(pe).Next = no
	m.he(po).Next = ne
	for _, x := range lo[1:] {
		m.he(x).Facet = f
	}
	if m.fc(f).Edge == e {
		m.fc(f).Edge = ne
	}
	if u := m.vx(m.he(e).Origin); u.Edge == e {
		u.Edge = no
	}
	if w := m.vx(m.he(o).Origin); w.Edge == o {
		w.Edge = ne
	}
	m.edges.release(int(e))
	m.edges.release(int(o))
	m.facets.release(int(g))

	m.logEdit(methodJoinFacet, slog.Int("edge", int(e)), slog.Int("facet", int(f)))
	return f, nil
}

func containsEdge(es []EdgeID, e EdgeID) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}
