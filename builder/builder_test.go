// Package builder_test contains functional tests for the shape constructors:
// vertex placement, counts, border/closed variants and validation.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/builder"
	"github.com/katalvlaran/polymesh/mesh"
)

func positions(t *testing.T, m *mesh.Mesh) []mesh.Position {
	t.Helper()
	out := make([]mesh.Position, 0, m.VertexCount())
	for _, v := range m.Vertices() {
		rec, err := m.Vertex(v)
		require.NoError(t, err)
		out = append(out, rec.Position)
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantPos []mesh.Position
	}{
		{
			name:    "Triangle",
			ctor:    builder.Triangle(),
			wantPos: []mesh.Position{mesh.Pos(0, 0), mesh.Pos(0, 200), mesh.Pos(200, 0)},
		},
		{
			name: "Rectangle(1,2,10,20)",
			ctor: builder.Rectangle(1, 2, 10, 20),
			wantPos: []mesh.Position{
				mesh.Pos(1, 2), mesh.Pos(1, 12), mesh.Pos(21, 12), mesh.Pos(21, 2),
			},
		},
		{
			name: "RegularPolygon(0,0,1,4)",
			ctor: builder.RegularPolygon(0, 0, 1, 4),
			wantPos: []mesh.Position{
				mesh.Pos(1, 0), mesh.Pos(0, -1), mesh.Pos(-1, 0), mesh.Pos(0, 1),
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, m.CheckIntegrity())

			n := len(tc.wantPos)
			assert.Equal(t, n, m.VertexCount())
			assert.Equal(t, n, m.EdgeCount())
			assert.Equal(t, 1, m.FacetCount())

			got := positions(t, m)
			for i, want := range tc.wantPos {
				assert.InDelta(t, want.X, got[i].X, 1e-12, "x of vertex %d", i)
				assert.InDelta(t, want.Y, got[i].Y, 1e-12, "y of vertex %d", i)
			}

			// Half-edge i leaves vertex i and every edge is border.
			for _, e := range m.Edges() {
				rec, err := m.Edge(e)
				require.NoError(t, err)
				assert.Equal(t, mesh.VertexID(e), rec.Origin)
				assert.Equal(t, mesh.NoEdge, rec.Opposite)
			}
			d, err := m.FacetDegree(0)
			require.NoError(t, err)
			assert.Equal(t, n, d)
		})
	}
}

func TestTriangle_Area(t *testing.T) {
	m, err := builder.NewTriangle()
	require.NoError(t, err)
	a, err := m.FacetArea(0)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, a)
}

func TestRegularPolygon_OnCircle(t *testing.T) {
	const (
		cx, cy, r = 3.0, -4.0, 7.5
		sides     = 11
	)
	m, err := builder.NewRegularPolygon(cx, cy, r, sides)
	require.NoError(t, err)
	assert.Equal(t, sides, m.VertexCount())
	for i, p := range positions(t, m) {
		assert.InDelta(t, r, math.Hypot(p.X-cx, p.Y-cy), 1e-9, "vertex %d", i)
	}
	c, err := m.CenterPosition(0)
	require.NoError(t, err)
	assert.InDelta(t, cx, c.X, 1e-9)
	assert.InDelta(t, cy, c.Y, 1e-9)
}

func TestRegularPolygon_StartAngle(t *testing.T) {
	m, err := builder.NewRegularPolygon(0, 0, 2, 6, builder.WithStartAngle(math.Pi/2))
	require.NoError(t, err)
	p := positions(t, m)[0]
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, -2, p.Y, 1e-12, "y grows downwards: θ₀=π/2 points to -Y")
}

func TestWithClosedBack(t *testing.T) {
	m, err := builder.NewRectangle(0, 0, 10, 10, builder.WithClosedBack())
	require.NoError(t, err)
	require.NoError(t, m.CheckIntegrity())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 8, m.EdgeCount())
	assert.Equal(t, 2, m.FacetCount())
	assert.Equal(t, 2.0, m.EulerCharacteristic())

	for _, v := range m.Vertices() {
		d, err := m.VertexDegree(v)
		require.NoError(t, err)
		assert.Equal(t, 2, d)
	}
	for _, e := range m.Edges() {
		rec, err := m.Edge(e)
		require.NoError(t, err)
		assert.NotEqual(t, mesh.NoEdge, rec.Opposite)
	}
}

func TestBuildMesh_Components(t *testing.T) {
	m, err := builder.BuildMesh(
		[]builder.BuilderOption{builder.WithClosedBack()},
		builder.Triangle(),
		builder.Rectangle(500, 500, 1, 1),
		builder.RegularPolygon(-100, 0, 5, 5),
	)
	require.NoError(t, err)
	require.NoError(t, m.CheckIntegrity())
	assert.Equal(t, 3+4+5, m.VertexCount())
	assert.Equal(t, 2*(3+4+5), m.EdgeCount())
	assert.Equal(t, 6, m.FacetCount())
	assert.Equal(t, 6.0, m.EulerCharacteristic(), "three spheres")
}

func TestBuildMesh_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"nil constructor", nil, builder.ErrConstructFailed},
		{"two sides", builder.RegularPolygon(0, 0, 1, 2), builder.ErrTooFewSides},
		{"zero radius", builder.RegularPolygon(0, 0, 0, 5), builder.ErrBadSize},
		{"NaN center", builder.RegularPolygon(math.NaN(), 0, 1, 5), builder.ErrBadSize},
		{"negative height", builder.Rectangle(0, 0, -1, 5), builder.ErrBadSize},
		{"infinite width", builder.Rectangle(0, 0, 1, math.Inf(1)), builder.ErrBadSize},
		{"infinite corner", builder.Rectangle(math.Inf(-1), 0, 1, 1), builder.ErrBadSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithStartAngle(math.NaN()) })
	assert.Panics(t, func() { builder.WithStartAngle(math.Inf(1)) })
	assert.NotPanics(t, func() { builder.WithStartAngle(-math.Pi) })
}

func TestBuildMesh_Deterministic(t *testing.T) {
	a, err := builder.NewRegularPolygon(1, 1, 3, 7, builder.WithClosedBack())
	require.NoError(t, err)
	b, err := builder.NewRegularPolygon(1, 1, 3, 7, builder.WithClosedBack())
	require.NoError(t, err)
	for _, e := range a.Edges() {
		ea, err := a.Edge(e)
		require.NoError(t, err)
		eb, err := b.Edge(e)
		require.NoError(t, err)
		assert.Equal(t, ea, eb)
	}
	assert.Equal(t, positions(t, a), positions(t, b))
}
