package mesh

import (
	"fmt"
	"log/slog"
)

const methodFlipEdge = "FlipEdge"

// FlipEdge rotates the diagonal shared by two triangles.
//
// With e: a→b in T1 = (e, n1: b→c, p1: c→a) and its opposite o: b→a in
// T2 = (o, n2: a→d, p2: d→b), the result is
//
//	T1 = (e: d→c, p1, n2)
//	T2 = (o: c→d, p2, n1)
//
// Handles are kept: e and o stay in their facets but now join d and c.
// Counts are unchanged. Flipping e twice restores the undirected
// adjacency, with e and o running the other way.
//
// Errors: ErrBorderElement if e has no opposite; ErrPreconditionViolation if
// the two facets coincide, are not both triangles, or share their apex.
func (m *Mesh) FlipEdge(e EdgeID) error {
	// checked phase
	if !m.edges.has(int(e)) {
		return fmt.Errorf("%s(%d): %w", methodFlipEdge, e, ErrIdentityNotFound)
	}
	o := m.he(e).Opposite
	if o == NoEdge {
		return fmt.Errorf("%s(%d): no opposite: %w", methodFlipEdge, e, ErrBorderElement)
	}
	if !m.edges.has(int(o)) {
		return fmt.Errorf("%s(%d): opposite %d: %w", methodFlipEdge, e, o, ErrMissingAdjacency)
	}
	f1, f2 := m.he(e).Facet, m.he(o).Facet
	for _, f := range [...]FacetID{f1, f2} {
		if !m.facets.has(int(f)) {
			return fmt.Errorf("%s(%d): facet %d: %w", methodFlipEdge, e, f, ErrMissingAdjacency)
		}
	}
	if f1 == f2 {
		return fmt.Errorf("%s(%d): both sides in facet %d: %w", methodFlipEdge, e, f1, ErrPreconditionViolation)
	}
	t1, err := m.loop(e)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", methodFlipEdge, e, err)
	}
	t2, err := m.loop(o)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", methodFlipEdge, e, err)
	}
	if len(t1) != 3 || len(t2) != 3 {
		return fmt.Errorf("%s(%d): facet degrees %d and %d, want 3: %w",
			methodFlipEdge, e, len(t1), len(t2), ErrPreconditionViolation)
	}
	n1, p1 := t1[1], t1[2]
	n2, p2 := t2[1], t2[2]
	a, b := m.he(e).Origin, m.he(o).Origin
	c, d := m.he(p1).Origin, m.he(p2).Origin
	for _, v := range [...]VertexID{a, b, c, d} {
		if !m.vertices.has(int(v)) {
			return fmt.Errorf("%s(%d): vertex %d: %w", methodFlipEdge, e, v, ErrMissingAdjacency)
		}
	}
	if c == d {
		return fmt.Errorf("%s(%d): apexes coincide at %d: %w", methodFlipEdge, e, c, ErrPreconditionViolation)
	}

	// mutation phase
	he, ho := m.he(e), m.he(o)
	he.Origin, he.Next = d, p1
	ho.Origin, ho.Next = c, p2
	m.he(p1).Next = n2
	m.he(n2).Next = e
	m.he(n2).Facet = f1
	m.he(p2).Next = n1
	m.he(n1).Next = o
	m.he(n1).Facet = f2
	m.fc(f1).Edge = e
	m.fc(f2).Edge = o
	m.vx(a).Edge = n2
	m.vx(b).Edge = n1

	m.logEdit(methodFlipEdge, slog.Int("edge", int(e)), slog.Int("opposite", int(o)))
	return nil
}
