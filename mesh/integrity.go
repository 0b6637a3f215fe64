package mesh

import "fmt"

const methodCheckIntegrity = "CheckIntegrity"

// CheckIntegrity verifies the connectivity invariants of every live element
// and returns the first violation found, wrapped around ErrInconsistent:
//
//   - each facet's boundary edge is live and its next-loop closes;
//   - every half-edge lies on exactly one facet loop and names that facet;
//   - origins are live; opposite is an involution and a twin runs between
//     the same two vertices the other way;
//   - a vertex's incident edge, when set, originates at the vertex.
//
// Complexity: O(V + E + F).
func (m *Mesh) CheckIntegrity() error {
	owner := make(map[EdgeID]FacetID, m.edges.count)
	for _, f := range m.Facets() {
		loop, err := m.facetLoop(f)
		if err != nil {
			return m.inconsistent("facet %d: %v", f, err)
		}
		for _, e := range loop {
			if g, dup := owner[e]; dup {
				return m.inconsistent("half-edge %d on the loops of facets %d and %d", e, g, f)
			}
			owner[e] = f
			if h := m.he(e).Facet; h != f {
				return m.inconsistent("half-edge %d on the loop of facet %d names facet %d", e, f, h)
			}
		}
	}

	for _, e := range m.Edges() {
		if _, ok := owner[e]; !ok {
			return m.inconsistent("half-edge %d is on no facet loop", e)
		}
		h := m.he(e)
		if !m.vertices.has(int(h.Origin)) {
			return m.inconsistent("half-edge %d: origin %d is not live", e, h.Origin)
		}
		if h.Opposite == NoEdge {
			continue
		}
		if _, ok := owner[h.Opposite]; !ok {
			return m.inconsistent("half-edge %d: opposite %d is not live or on no loop", e, h.Opposite)
		}
		t := m.he(h.Opposite)
		if t.Opposite != e {
			return m.inconsistent("half-edge %d: opposite of opposite is %d", e, t.Opposite)
		}
		if h.Opposite == e {
			return m.inconsistent("half-edge %d is its own opposite", e)
		}
		dst := m.he(h.Next).Origin
		tdst := m.he(t.Next).Origin
		if t.Origin != dst || tdst != h.Origin {
			return m.inconsistent("half-edge %d (%d→%d) and opposite %d (%d→%d) do not match",
				e, h.Origin, dst, h.Opposite, t.Origin, tdst)
		}
	}

	for _, v := range m.Vertices() {
		e := m.vx(v).Edge
		if e == NoEdge {
			continue
		}
		if !m.edges.has(int(e)) {
			return m.inconsistent("vertex %d: incident edge %d is not live", v, e)
		}
		if o := m.he(e).Origin; o != v {
			return m.inconsistent("vertex %d: incident edge %d leaves vertex %d", v, e, o)
		}
	}

	return nil
}

func (m *Mesh) inconsistent(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodCheckIntegrity, fmt.Sprintf(format, args...), ErrInconsistent)
}
