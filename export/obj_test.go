package export_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/builder"
	"github.com/katalvlaran/polymesh/export"
)

func TestWriteOBJ_Rectangle(t *testing.T) {
	m, err := builder.NewRectangle(1, 2, 3, 4.5, builder.WithClosedBack())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteOBJ(&buf, m))
	assert.Equal(t, `# polymesh: 4 vertices, 2 facets
v 1 2 0
v 1 5 0
v 5.5 5 0
v 5.5 2 0
f 1 2 3 4
f 4 3 2 1
`, buf.String())
}

func TestWriteOBJ_DenseAfterRemoval(t *testing.T) {
	m, err := builder.NewRectangle(0, 0, 10, 10, builder.WithClosedBack())
	require.NoError(t, err)
	hub, err := m.CreateCenterVertex(0)
	require.NoError(t, err)
	// contract the spoke hub→v0: vertex handle 0 becomes a hole
	rec, err := m.Vertex(hub)
	require.NoError(t, err)
	_, err = m.JoinVertex(rec.Edge)
	require.NoError(t, err)
	require.False(t, m.HasVertex(0))

	var buf bytes.Buffer
	require.NoError(t, export.WriteOBJ(&buf, m))

	var verts, faces int
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			faces++
			for _, idx := range strings.Fields(line)[1:] {
				n, err := strconv.Atoi(idx)
				require.NoError(t, err)
				assert.True(t, n >= 1 && n <= m.VertexCount(), "index %d out of range", n)
			}
		}
	}
	assert.Equal(t, m.VertexCount(), verts)
	assert.Equal(t, m.FacetCount(), faces)
}

func TestWriteOBJ_NilMesh(t *testing.T) {
	assert.ErrorIs(t, export.WriteOBJ(&bytes.Buffer{}, nil), export.ErrMeshNil)
}
