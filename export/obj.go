// SPDX-License-Identifier: MIT

// Package export writes a mesh.Mesh in interchange formats.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/polymesh/mesh"
)

// ErrMeshNil is returned when a nil mesh is passed to an exporter.
var ErrMeshNil = errors.New("export: mesh is nil")

// WriteOBJ writes m as a Wavefront OBJ document: one "v x y 0" line per
// live vertex in ascending handle order, then one "f i j k ..." line per
// live facet in ascending handle order. Face indices are 1-based positions
// in the vertex list, so the output is dense even when handles are not.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	if m == nil {
		return ErrMeshNil
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# polymesh: %d vertices, %d facets\n", m.VertexCount(), m.FacetCount())

	index := make(map[mesh.VertexID]int, m.VertexCount())
	for i, v := range m.Vertices() {
		rec, err := m.Vertex(v)
		if err != nil {
			return fmt.Errorf("export: WriteOBJ: %w", err)
		}
		index[v] = i + 1
		fmt.Fprintf(bw, "v %s %s 0\n", objFloat(rec.Position.X), objFloat(rec.Position.Y))
	}
	for _, f := range m.Facets() {
		vs, err := m.FacetVertices(f)
		if err != nil {
			return fmt.Errorf("export: WriteOBJ: facet %d: %w", f, err)
		}
		bw.WriteString("f")
		for _, v := range vs {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(index[v]))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func objFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
