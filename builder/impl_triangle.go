// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// impl_triangle.go - implementation of the Triangle() constructor.
//
// Contract:
//   • Vertices, in handle order: (0,0), (0,200), (200,0).
//   • One facet; half-edge i leaves vertex i.

package builder

import "github.com/katalvlaran/polymesh/mesh"

// Triangle returns a Constructor that adds the canonical right triangle.
func Triangle() Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		return addShape(m, cfg, methodTriangle, []mesh.Position{
			mesh.Pos(0, 0),
			mesh.Pos(0, triangleLeg),
			mesh.Pos(triangleLeg, 0),
		})
	}
}
