// Package mesh: handle types, element records and the Position value type.

package mesh

import (
	"fmt"

	"github.com/gogpu/gg"
)

// VertexID addresses a vertex slot inside one Mesh.
type VertexID int

// EdgeID addresses a half-edge slot inside one Mesh.
type EdgeID int

// FacetID addresses a facet slot inside one Mesh.
type FacetID int

// Absent references. A zero handle is a valid slot, so "no element" is -1.
const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFacet  FacetID  = -1
)

// Position is the 2-D coordinate carried by a vertex. It supports Add, Sub,
// Mul, Div and Dot, and compares with ==.
type Position = gg.Point

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position { return gg.Pt(x, y) }

// Axis returns coordinate i of p: 0 for X, 1 for Y.
// Any other index fails with ErrPreconditionViolation.
func Axis(p Position, i int) (float64, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	default:
		return 0, fmt.Errorf("Axis(%d): index out of range [0,2): %w", i, ErrPreconditionViolation)
	}
}

// Vertex is a point of the mesh.
type Vertex struct {
	// Position is the coordinate of the vertex.
	Position Position

	// Edge is one half-edge whose origin is this vertex, or NoEdge.
	Edge EdgeID
}

// HalfEdge is one directed side of an edge, owned by exactly one facet.
//
// The half-edge runs from Origin to the origin of Next. Opposite, when
// present, runs the other way and belongs to the neighbouring facet.
type HalfEdge struct {
	Origin   VertexID // tail vertex
	Facet    FacetID  // facet whose boundary loop contains this half-edge
	Opposite EdgeID   // twin, NoEdge on a border
	Next     EdgeID   // successor in the facet loop
}

// Facet is a polygonal region bounded by a closed loop of half-edges.
type Facet struct {
	// Edge is any half-edge on the boundary loop, or NoEdge.
	Edge EdgeID
}

// tombstones written over released slots.
var (
	deadVertex = Vertex{Edge: NoEdge}
	deadEdge   = HalfEdge{Origin: NoVertex, Facet: NoFacet, Opposite: NoEdge, Next: NoEdge}
	deadFacet  = Facet{Edge: NoEdge}
)
