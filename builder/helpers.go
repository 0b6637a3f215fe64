// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// helpers.go - shared loop emission for the shape constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polymesh/mesh"
)

// addShape adds one vertex per point and a facet over them in order. With
// cfg.closedBack it also adds the reversed back facet and pairs the twins.
// Vertex handles are allocated in point order, so shape i's corners are
// deterministic.
//
// Complexity: O(n) for the shape, plus O(E) for pairing when closed.
func addShape(m *mesh.Mesh, cfg builderConfig, method string, pts []mesh.Position) error {
	vs := make([]mesh.VertexID, len(pts))
	for i, p := range pts {
		vs[i] = m.AddVertex(p)
	}
	if _, err := m.AddFacetLoop(vs); err != nil {
		return fmt.Errorf("%s: front facet: %v: %w", method, err, ErrConstructFailed)
	}
	if !cfg.closedBack {
		return nil
	}

	back := make([]mesh.VertexID, len(vs))
	for i, v := range vs {
		back[len(vs)-1-i] = v
	}
	if _, err := m.AddFacetLoop(back); err != nil {
		return fmt.Errorf("%s: back facet: %v: %w", method, err, ErrConstructFailed)
	}
	if got := m.PairOpposites(); got != len(vs) {
		return fmt.Errorf("%s: paired %d twins, want %d: %w", method, got, len(vs), ErrConstructFailed)
	}

	return nil
}
