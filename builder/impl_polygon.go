// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// impl_polygon.go - implementation of the RegularPolygon(...) constructor.
//
// Contract:
//   • sides ≥ MinPolygonSides (else ErrTooFewSides).
//   • radius finite and > 0 (else ErrBadSize); center finite.
//   • Vertex i at (cx + r·cos(θ₀+iα), cy − r·sin(θ₀+iα)), α = 2π/sides,
//     θ₀ from WithStartAngle (default 0).
//
// Complexity: O(sides).

package builder

import (
	"math"

	"github.com/katalvlaran/polymesh/mesh"
)

// RegularPolygon returns a Constructor that adds a regular polygon inscribed
// in the circle of the given radius around (centerX, centerY).
func RegularPolygon(centerX, centerY, radius float64, sides int) Constructor {
	return func(m *mesh.Mesh, cfg builderConfig) error {
		if err := validateMinSides(methodRegularPolygon, sides); err != nil {
			return err
		}
		if err := validateLength(methodRegularPolygon, "radius", radius); err != nil {
			return err
		}
		if err := validateCoord(methodRegularPolygon, "centerX", centerX); err != nil {
			return err
		}
		if err := validateCoord(methodRegularPolygon, "centerY", centerY); err != nil {
			return err
		}

		alpha := 2 * math.Pi / float64(sides)
		pts := make([]mesh.Position, sides)
		for i := range pts {
			theta := cfg.startAngle + float64(i)*alpha
			pts[i] = mesh.Pos(centerX+radius*math.Cos(theta), centerY-radius*math.Sin(theta))
		}

		return addShape(m, cfg, methodRegularPolygon, pts)
	}
}
