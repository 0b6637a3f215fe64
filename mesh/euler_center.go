// Package mesh: CreateCenterVertex / EraseCenterVertex.
//
// Both operators run in two phases. The checked phase resolves every handle
// and precondition without writing; only then does the mutation phase
// rewire, so a returned error always leaves the mesh untouched.

package mesh

import (
	"fmt"
	"log/slog"
)

const (
	methodCreateCenterVertex = "CreateCenterVertex"
	methodEraseCenterVertex  = "EraseCenterVertex"
)

// CreateCenterVertex fans the facet containing e into triangles around a new
// hub vertex placed at the facet's centroid, and returns the hub.
//
// For a loop b_0..b_{d-1} starting at e (b_i: v_i → v_{i+1}) it adds the
// spokes out_i: c → v_i and in_i: v_i → c as opposite pairs and builds the
// triangles T_i = (b_i, in_{i+1}, out_i). T_0 keeps the facet of e; the hub's
// incident edge is out_0.
//
// Counts: +1 vertex, +2d half-edges, +(d−1) facets.
// Errors: ErrIdentityNotFound, ErrMissingAdjacency (loop, facet or origin
// does not resolve).
func (m *Mesh) CreateCenterVertex(e EdgeID) (VertexID, error) {
	// checked phase
	loop, err := m.loop(e)
	if err != nil {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodCreateCenterVertex, e, err)
	}
	f := m.he(e).Facet
	if !m.facets.has(int(f)) {
		return NoVertex, fmt.Errorf("%s(%d): facet %d: %w", methodCreateCenterVertex, e, f, ErrMissingAdjacency)
	}
	pts, err := m.loopPositions(e)
	if err != nil {
		return NoVertex, fmt.Errorf("%s(%d): %w", methodCreateCenterVertex, e, err)
	}
	rim := make([]VertexID, len(loop))
	for i, b := range loop {
		rim[i] = m.he(b).Origin
	}

	// mutation phase
	d := len(loop)
	c := m.AddVertex(centroid(pts))
	tri := make([]FacetID, d)
	tri[0] = f
	for i := 1; i < d; i++ {
		tri[i] = m.newFacet()
	}
	out := make([]EdgeID, d)
	in := make([]EdgeID, d)
	for i := 0; i < d; i++ {
		out[i] = m.newEdge(c, tri[i])
		in[i] = m.newEdge(rim[i], tri[(i+d-1)%d])
	}
	for i, b := range loop {
		j := (i + 1) % d
		m.he(out[i]).Opposite, m.he(in[i]).Opposite = in[i], out[i]

		m.he(b).Next = in[j]
		m.he(in[j]).Next = out[i]
		m.he(out[i]).Next = b
		m.he(b).Facet = tri[i]
		m.fc(tri[i]).Edge = b
	}
	m.vx(c).Edge = out[0]

	m.logEdit(methodCreateCenterVertex, slog.Int("edge", int(e)), slog.Int("hub", int(c)), slog.Int("degree", d))
	return c, nil
}

// EraseCenterVertex removes the origin hub of spoke together with all its
// spokes, merging the facets around the hub into one. The facet of spoke
// survives and is returned; its boundary edge becomes next(spoke).
//
// Inverse of CreateCenterVertex: applied to the hub's incident edge it
// restores the original facet's loop and counts.
//
// Errors:
//   - ErrBorderElement if the rotation around the hub is not closed.
//   - ErrPreconditionViolation if two spokes share a facet or a facet around
//     the hub has degree < 3.
func (m *Mesh) EraseCenterVertex(spoke EdgeID) (FacetID, error) {
	// checked phase
	if !m.edges.has(int(spoke)) {
		return NoFacet, fmt.Errorf("%s(%d): %w", methodEraseCenterVertex, spoke, ErrIdentityNotFound)
	}
	hub := m.he(spoke).Origin
	if !m.vertices.has(int(hub)) {
		return NoFacet, fmt.Errorf("%s(%d): origin %d: %w", methodEraseCenterVertex, spoke, hub, ErrMissingAdjacency)
	}
	fan, err := m.fan(spoke)
	if err != nil {
		return NoFacet, fmt.Errorf("%s(%d): %w", methodEraseCenterVertex, spoke, err)
	}

	d := len(fan)
	seen := make(map[FacetID]struct{}, d)
	opp := make([]EdgeID, d)
	after := make([]EdgeID, d)  // next(s_k)
	before := make([]EdgeID, d) // prev(opposite(s_k))
	for k, s := range fan {
		f := m.he(s).Facet
		if !m.facets.has(int(f)) {
			return NoFacet, fmt.Errorf("%s(%d): facet %d of spoke %d: %w", methodEraseCenterVertex, spoke, f, s, ErrMissingAdjacency)
		}
		if _, dup := seen[f]; dup {
			return NoFacet, fmt.Errorf("%s(%d): facet %d met twice around hub %d: %w",
				methodEraseCenterVertex, spoke, f, hub, ErrPreconditionViolation)
		}
		seen[f] = struct{}{}

		loop, err := m.loop(s)
		if err != nil {
			return NoFacet, fmt.Errorf("%s(%d): %w", methodEraseCenterVertex, spoke, err)
		}
		if len(loop) < 3 {
			return NoFacet, fmt.Errorf("%s(%d): facet %d degree %d < 3: %w",
				methodEraseCenterVertex, spoke, f, len(loop), ErrPreconditionViolation)
		}
		opp[k] = m.he(s).Opposite
		if v := m.he(opp[k]).Origin; !m.vertices.has(int(v)) {
			return NoFacet, fmt.Errorf("%s(%d): origin %d of %d: %w", methodEraseCenterVertex, spoke, v, opp[k], ErrMissingAdjacency)
		}
		after[k] = loop[1]
		prev, err := m.loop(opp[k])
		if err != nil {
			return NoFacet, fmt.Errorf("%s(%d): %w", methodEraseCenterVertex, spoke, err)
		}
		before[k] = prev[len(prev)-1]
	}
	keep := m.he(spoke).Facet

	// mutation phase
	for k := range fan {
		m.he(before[k]).Next = after[k]
		if v := m.vx(m.he(opp[k]).Origin); v.Edge == opp[k] {
			v.Edge = after[k]
		}
	}
	m.relabel(after[0], keep)
	m.fc(keep).Edge = after[0]
	for k, s := range fan {
		if f := m.he(s).Facet; f != keep {
			m.facets.release(int(f))
		}
		m.edges.release(int(s))
		m.edges.release(int(opp[k]))
	}
	m.vertices.release(int(hub))

	m.logEdit(methodEraseCenterVertex, slog.Int("spoke", int(spoke)), slog.Int("facet", int(keep)), slog.Int("degree", d))
	return keep, nil
}

// relabel assigns f to every half-edge on the loop of e. The loop must be
// closed; the walk stops after EdgeCount steps regardless.
func (m *Mesh) relabel(e EdgeID, f FacetID) {
	cur := e
	for i := 0; i < m.edges.count; i++ {
		m.he(cur).Facet = f
		if cur = m.he(cur).Next; cur == e {
			return
		}
	}
}
