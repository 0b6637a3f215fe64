package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/polymesh/mesh"
)

// ExampleMesh_CreateCenterVertex fans a rectangle into four triangles and
// erases the hub again.
func ExampleMesh_CreateCenterVertex() {
	// 1) One rectangular facet, border edges only:
	m := mesh.New()
	vs := []mesh.VertexID{
		m.AddVertex(mesh.Pos(0, 0)),
		m.AddVertex(mesh.Pos(0, 10)),
		m.AddVertex(mesh.Pos(10, 10)),
		m.AddVertex(mesh.Pos(10, 0)),
	}
	f, _ := m.AddFacetLoop(vs)
	fmt.Println(m)

	// 2) Insert the hub at the centroid:
	es, _ := m.FacetEdges(f)
	hub, _ := m.CreateCenterVertex(es[0])
	v, _ := m.Vertex(hub)
	deg, _ := m.VertexDegree(hub)
	fmt.Println(m, v.Position, deg)

	// 3) Remove it through any spoke:
	_, _ = m.EraseCenterVertex(v.Edge)
	fmt.Println(m, m.CheckIntegrity())

	// Output:
	// mesh{V=4 E=4 F=1}
	// mesh{V=5 E=12 F=4} {5 5} 4
	// mesh{V=4 E=4 F=1} <nil>
}

// ExampleMesh_SplitFacet cuts the front of a closed square along one
// diagonal and flips it onto the other.
func ExampleMesh_SplitFacet() {
	m := mesh.New()
	vs := []mesh.VertexID{
		m.AddVertex(mesh.Pos(0, 0)),
		m.AddVertex(mesh.Pos(0, 1)),
		m.AddVertex(mesh.Pos(1, 1)),
		m.AddVertex(mesh.Pos(1, 0)),
	}
	front, _ := m.AddFacetLoop(vs)
	_, _ = m.AddFacetLoop([]mesh.VertexID{vs[3], vs[2], vs[1], vs[0]})
	fmt.Println("pairs:", m.PairOpposites(), "euler:", m.EulerCharacteristic())

	es, _ := m.FacetEdges(front)
	diag, _ := m.SplitFacet(es[0], es[2])
	from, _ := m.Edge(diag)
	to, _ := m.Destination(diag)
	fmt.Println("diagonal:", from.Origin, "->", to)

	_ = m.FlipEdge(diag)
	from, _ = m.Edge(diag)
	to, _ = m.Destination(diag)
	fmt.Println("flipped:", from.Origin, "->", to)
	fmt.Println(m, "euler:", m.EulerCharacteristic())

	// Output:
	// pairs: 4 euler: 2
	// diagonal: 1 -> 3
	// flipped: 2 -> 0
	// mesh{V=4 E=10 F=3} euler: 2
}
