// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// impl_rectangle.go - implementation of the Rectangle(...) constructor.
//
// Contract:
//   • height, width finite and > 0 (else ErrBadSize); corner finite.
//   • Vertices, in handle order: (x,y), (x,y+h), (x+w,y+h), (x+w,y).

package builder

import "github.com/katalvlaran/polymesh/mesh"

// Rectangle returns a Constructor that adds an axis-aligned rectangle with
// one corner at (cornerX, cornerY).
func Rectangle(cornerX, cornerY, height, width float64) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateCoord(methodRectangle, "cornerX", cornerX); err != nil {
			return err
		}
		if err := validateCoord(methodRectangle, "cornerY", cornerY); err != nil {
			return err
		}
		if err := validateLength(methodRectangle, "height", height); err != nil {
			return err
		}
		if err := validateLength(methodRectangle, "width", width); err != nil {
			return err
		}

		return addShape(m, cfg, methodRectangle, []mesh.Position{
			mesh.Pos(cornerX, cornerY),
			mesh.Pos(cornerX, cornerY+height),
			mesh.Pos(cornerX+width, cornerY+height),
			mesh.Pos(cornerX+width, cornerY),
		})
	}
}
