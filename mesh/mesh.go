// Package mesh: container construction, reads and enumeration.
//
// Elements live in three index arenas. A handle names a slot; reads of a
// released slot fail with ErrIdentityNotFound. Nothing here locks: the mesh
// has a single writer and callers serialize access (Clone gives a reader its
// own copy).

package mesh

import (
	"fmt"
	"sort"
)

const (
	methodAddFacetLoop = "AddFacetLoop"
	methodLinkOpposite = "LinkOpposite"
	methodVertex       = "Vertex"
	methodEdge         = "Edge"
	methodFacet        = "Facet"
)

// Mesh owns every vertex, half-edge and facet of one planar polygon mesh.
// The zero value is not usable; call New.
type Mesh struct {
	vertices *arena[Vertex]
	edges    *arena[HalfEdge]
	facets   *arena[Facet]
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		vertices: newArena(deadVertex),
		edges:    newArena(deadEdge),
		facets:   newArena(deadFacet),
	}
}

// AddVertex inserts an isolated vertex at p and returns its handle.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(p Position) VertexID {
	return VertexID(m.vertices.insert(Vertex{Position: p, Edge: NoEdge}))
}

// AddFacetLoop creates one facet bounded by the half-edges vs[i] → vs[i+1 mod n].
// The new half-edges have no opposite; a vertex without an incident edge
// receives the half-edge leaving it. The facet's boundary edge is the
// half-edge leaving vs[0].
//
// Errors: ErrPreconditionViolation for an empty loop, ErrIdentityNotFound
// for a dead vertex handle.
func (m *Mesh) AddFacetLoop(vs []VertexID) (FacetID, error) {
	if len(vs) < 1 {
		return NoFacet, fmt.Errorf("%s: empty loop: %w", methodAddFacetLoop, ErrPreconditionViolation)
	}
	for i, v := range vs {
		if !m.vertices.has(int(v)) {
			return NoFacet, fmt.Errorf("%s: vs[%d]=%d: %w", methodAddFacetLoop, i, v, ErrIdentityNotFound)
		}
	}

	f := m.newFacet()
	loop := make([]EdgeID, len(vs))
	for i, v := range vs {
		loop[i] = m.newEdge(v, f)
	}
	for i, e := range loop {
		m.he(e).Next = loop[(i+1)%len(loop)]
		if v := m.vx(vs[i]); v.Edge == NoEdge {
			v.Edge = e
		}
	}
	m.fc(f).Edge = loop[0]

	return f, nil
}

// LinkOpposite pairs a and b as twins. Both must be live, currently
// unpaired (or already paired with each other), and run between the same
// two vertices in opposite directions.
func (m *Mesh) LinkOpposite(a, b EdgeID) error {
	if a == b {
		return fmt.Errorf("%s(%d,%d): identical half-edges: %w", methodLinkOpposite, a, b, ErrPreconditionViolation)
	}
	for _, e := range [...]EdgeID{a, b} {
		if !m.edges.has(int(e)) {
			return fmt.Errorf("%s(%d,%d): half-edge %d: %w", methodLinkOpposite, a, b, e, ErrIdentityNotFound)
		}
	}
	ea, eb := m.he(a), m.he(b)
	if (ea.Opposite != NoEdge && ea.Opposite != b) || (eb.Opposite != NoEdge && eb.Opposite != a) {
		return fmt.Errorf("%s(%d,%d): already paired: %w", methodLinkOpposite, a, b, ErrPreconditionViolation)
	}
	da, err := m.Destination(a)
	if err != nil {
		return fmt.Errorf("%s(%d,%d): %w", methodLinkOpposite, a, b, err)
	}
	db, err := m.Destination(b)
	if err != nil {
		return fmt.Errorf("%s(%d,%d): %w", methodLinkOpposite, a, b, err)
	}
	if da != eb.Origin || db != ea.Origin {
		return fmt.Errorf("%s(%d,%d): endpoints %d→%d vs %d→%d: %w",
			methodLinkOpposite, a, b, ea.Origin, da, eb.Origin, db, ErrPreconditionViolation)
	}
	ea.Opposite, eb.Opposite = b, a

	return nil
}

// PairOpposites pairs every unpaired half-edge u→v with an unpaired v→u,
// visiting half-edges in ascending handle order, and returns the number of
// pairs created. Half-edges whose destination cannot be resolved are skipped.
// Complexity: O(E).
func (m *Mesh) PairOpposites() int {
	type key struct{ from, to VertexID }
	waiting := make(map[key][]EdgeID)
	pairs := 0
	for _, e := range m.Edges() {
		h := m.he(e)
		if h.Opposite != NoEdge {
			continue
		}
		to, err := m.Destination(e)
		if err != nil {
			continue
		}
		rev := key{to, h.Origin}
		if cands := waiting[rev]; len(cands) > 0 {
			twin := cands[0]
			waiting[rev] = cands[1:]
			h.Opposite = twin
			m.he(twin).Opposite = e
			pairs++
			continue
		}
		k := key{h.Origin, to}
		waiting[k] = append(waiting[k], e)
	}

	return pairs
}

// Vertex returns a copy of the vertex record v.
func (m *Mesh) Vertex(v VertexID) (Vertex, error) {
	if !m.vertices.has(int(v)) {
		return Vertex{}, fmt.Errorf("%s(%d): %w", methodVertex, v, ErrIdentityNotFound)
	}
	return m.vertices.slots[v], nil
}

// Edge returns a copy of the half-edge record e.
func (m *Mesh) Edge(e EdgeID) (HalfEdge, error) {
	if !m.edges.has(int(e)) {
		return HalfEdge{}, fmt.Errorf("%s(%d): %w", methodEdge, e, ErrIdentityNotFound)
	}
	return m.edges.slots[e], nil
}

// Facet returns a copy of the facet record f.
func (m *Mesh) Facet(f FacetID) (Facet, error) {
	if !m.facets.has(int(f)) {
		return Facet{}, fmt.Errorf("%s(%d): %w", methodFacet, f, ErrIdentityNotFound)
	}
	return m.facets.slots[f], nil
}

// HasVertex reports whether v names a live vertex.
func (m *Mesh) HasVertex(v VertexID) bool { return m.vertices.has(int(v)) }

// HasEdge reports whether e names a live half-edge.
func (m *Mesh) HasEdge(e EdgeID) bool { return m.edges.has(int(e)) }

// HasFacet reports whether f names a live facet.
func (m *Mesh) HasFacet(f FacetID) bool { return m.facets.has(int(f)) }

// Vertices returns the live vertex handles in ascending order.
func (m *Mesh) Vertices() []VertexID { return convertIDs[VertexID](m.vertices.indices()) }

// Edges returns the live half-edge handles in ascending order.
func (m *Mesh) Edges() []EdgeID { return convertIDs[EdgeID](m.edges.indices()) }

// Facets returns the live facet handles in ascending order.
func (m *Mesh) Facets() []FacetID { return convertIDs[FacetID](m.facets.indices()) }

// VertexCount returns the number of live vertices.
func (m *Mesh) VertexCount() int { return m.vertices.count }

// EdgeCount returns the number of live half-edges (twice the number of
// full edges on a closed mesh).
func (m *Mesh) EdgeCount() int { return m.edges.count }

// FacetCount returns the number of live facets.
func (m *Mesh) FacetCount() int { return m.facets.count }

// EulerCharacteristic returns V − E/2 + F, counting half-edges in E.
// It is 2 for a closed sphere-like mesh and is preserved by every operator.
func (m *Mesh) EulerCharacteristic() float64 {
	return float64(m.VertexCount()) - float64(m.EdgeCount())/2 + float64(m.FacetCount())
}

// Clone returns a deep copy. Handles valid in m are valid in the copy and
// name the same elements; later edits to either mesh do not affect the other.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices: m.vertices.clone(),
		edges:    m.edges.clone(),
		facets:   m.facets.clone(),
	}
}

// String summarizes the element counts.
func (m *Mesh) String() string {
	return fmt.Sprintf("mesh{V=%d E=%d F=%d}", m.VertexCount(), m.EdgeCount(), m.FacetCount())
}

func convertIDs[ID ~int](idx []int) []ID {
	out := make([]ID, len(idx))
	for i, x := range idx {
		out[i] = ID(x)
	}
	return out
}

// sortFacets orders facet handles ascending in place.
func sortFacets(fs []FacetID) {
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
}

// Unchecked slot access for the mutation phase. Callers have validated the
// handle; the pointer is invalidated by the next insert of the same kind.

func (m *Mesh) vx(v VertexID) *Vertex { return &m.vertices.slots[v] }
func (m *Mesh) he(e EdgeID) *HalfEdge { return &m.edges.slots[e] }
func (m *Mesh) fc(f FacetID) *Facet { return &m.facets.slots[f] }

func (m *Mesh) newFacet() FacetID { return FacetID(m.facets.insert(Facet{Edge: NoEdge})) }

func (m *Mesh) newEdge(origin VertexID, f FacetID) EdgeID {
	return EdgeID(m.edges.insert(HalfEdge{Origin: origin, Facet: f, Opposite: NoEdge, Next: NoEdge}))
}
