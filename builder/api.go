// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Shape factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options and constructor order ⇒ identical meshes,
//     handle for handle.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polymesh/mesh"
)

// Constructor adds one shape to m using the resolved builderConfig.
// Constructors validate parameters before touching m and return sentinel
// errors (no panics).
type Constructor func(m *mesh.Mesh, cfg builderConfig) error

// BuildMesh creates an empty mesh, resolves the builder configuration from
// bopts and applies all constructors in order. Several constructors give
// disjoint components of one mesh.
//
// Any constructor error is wrapped with "BuildMesh: %w" and returned
// immediately; the partially built mesh is discarded.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}
	mesh.Logger().Debug("builder: mesh built",
		"constructors", len(cons), "vertices", m.VertexCount(), "facets", m.FacetCount())

	return m, nil
}

// NewTriangle builds the canonical triangle (0,0), (0,200), (200,0).
func NewTriangle(opts ...BuilderOption) (*mesh.Mesh, error) {
	return BuildMesh(opts, Triangle())
}

// NewRectangle builds an axis-aligned rectangle with one corner at
// (cornerX, cornerY).
func NewRectangle(cornerX, cornerY, height, width float64, opts ...BuilderOption) (*mesh.Mesh, error) {
	return BuildMesh(opts, Rectangle(cornerX, cornerY, height, width))
}

// NewRegularPolygon builds a regular polygon with the given number of sides
// inscribed in the circle of radius r around (centerX, centerY).
func NewRegularPolygon(centerX, centerY, radius float64, sides int, opts ...BuilderOption) (*mesh.Mesh, error) {
	return BuildMesh(opts, RegularPolygon(centerX, centerY, radius, sides))
}
