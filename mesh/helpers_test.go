package mesh_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/mesh"
)

// snapshot captures every live record by handle.
type snapshot struct {
	Vertices map[mesh.VertexID]mesh.Vertex
	Edges    map[mesh.EdgeID]mesh.HalfEdge
	Facets   map[mesh.FacetID]mesh.Facet
}

func takeSnapshot(t *testing.T, m *mesh.Mesh) snapshot {
	t.Helper()
	s := snapshot{
		Vertices: map[mesh.VertexID]mesh.Vertex{},
		Edges:    map[mesh.EdgeID]mesh.HalfEdge{},
		Facets:   map[mesh.FacetID]mesh.Facet{},
	}
	for _, v := range m.Vertices() {
		rec, err := m.Vertex(v)
		require.NoError(t, err)
		s.Vertices[v] = rec
	}
	for _, e := range m.Edges() {
		rec, err := m.Edge(e)
		require.NoError(t, err)
		s.Edges[e] = rec
	}
	for _, f := range m.Facets() {
		rec, err := m.Facet(f)
		require.NoError(t, err)
		s.Facets[f] = rec
	}
	return s
}

// requireSameConnectivity compares half-edge records, vertex positions and
// the live facet set. Incident and boundary edge choices may differ.
func requireSameConnectivity(t *testing.T, want, got snapshot) {
	t.Helper()
	require.Equal(t, want.Edges, got.Edges)
	require.Len(t, got.Vertices, len(want.Vertices))
	for v, rec := range want.Vertices {
		g, ok := got.Vertices[v]
		require.True(t, ok, "vertex %d missing", v)
		require.Equal(t, rec.Position, g.Position, "vertex %d moved", v)
	}
	require.Len(t, got.Facets, len(want.Facets))
	for f := range want.Facets {
		_, ok := got.Facets[f]
		require.True(t, ok, "facet %d missing", f)
	}
}

// rectangle builds (0,0),(0,10),(10,10),(10,0) as facet 0 with half-edges
// 0..3 (edge i leaves vertex i). closed adds the reversed back facet 1 with
// half-edges 4..7, all twins paired.
func rectangle(t *testing.T, closed bool) *mesh.Mesh {
	t.Helper()
	return loopMesh(t, closed,
		mesh.Pos(0, 0), mesh.Pos(0, 10), mesh.Pos(10, 10), mesh.Pos(10, 0))
}

// polygon builds a regular n-gon of radius 10 around the origin.
func polygon(t *testing.T, n int, closed bool) *mesh.Mesh {
	t.Helper()
	pts := make([]mesh.Position, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = mesh.Pos(10*math.Cos(a), -10*math.Sin(a))
	}
	return loopMesh(t, closed, pts...)
}

func triangle(t *testing.T) *mesh.Mesh {
	t.Helper()
	return loopMesh(t, false, mesh.Pos(0, 0), mesh.Pos(0, 200), mesh.Pos(200, 0))
}

func loopMesh(t *testing.T, closed bool, pts ...mesh.Position) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	vs := make([]mesh.VertexID, len(pts))
	for i, p := range pts {
		vs[i] = m.AddVertex(p)
	}
	_, err := m.AddFacetLoop(vs)
	require.NoError(t, err)
	if closed {
		rev := make([]mesh.VertexID, len(vs))
		for i, v := range vs {
			rev[len(vs)-1-i] = v
		}
		_, err = m.AddFacetLoop(rev)
		require.NoError(t, err)
		require.Equal(t, len(vs), m.PairOpposites())
	}
	requireIntact(t, m)
	return m
}

func requireIntact(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	require.NoError(t, m.CheckIntegrity())
}

func requireCounts(t *testing.T, m *mesh.Mesh, v, e, f int) {
	t.Helper()
	require.Equal(t, v, m.VertexCount(), "vertices")
	require.Equal(t, e, m.EdgeCount(), "half-edges")
	require.Equal(t, f, m.FacetCount(), "facets")
}

// undirectedEdges counts full edges by their sorted endpoint pair.
func undirectedEdges(t *testing.T, m *mesh.Mesh) map[[2]mesh.VertexID]int {
	t.Helper()
	out := map[[2]mesh.VertexID]int{}
	for _, e := range m.Edges() {
		rec, err := m.Edge(e)
		require.NoError(t, err)
		d, err := m.Destination(e)
		require.NoError(t, err)
		a, b := rec.Origin, d
		if a > b {
			a, b = b, a
		}
		out[[2]mesh.VertexID{a, b}]++
	}
	return out
}

// facetVertexSets returns each facet's sorted vertex list, the list itself
// sorted, so that facet handles do not matter.
func facetVertexSets(t *testing.T, m *mesh.Mesh) [][]mesh.VertexID {
	t.Helper()
	var out [][]mesh.VertexID
	for _, f := range m.Facets() {
		vs, err := m.FacetVertices(f)
		require.NoError(t, err)
		sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
		out = append(out, vs)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}
