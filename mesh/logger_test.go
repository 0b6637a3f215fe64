package mesh_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/mesh"
)

func TestSetLogger_DebugRecords(t *testing.T) {
	var buf bytes.Buffer
	mesh.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { mesh.SetLogger(nil) })

	m := rectangle(t, false)
	_, err := m.CreateCenterVertex(0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "mesh: CreateCenterVertex")
	assert.Contains(t, out, "hub=4")
	assert.Contains(t, out, "facets=4")

	buf.Reset()
	_ = m.FlipEdge(0) // border edge: rejected, nothing logged
	assert.Empty(t, buf.String())
}

func TestLogger_DefaultSilent(t *testing.T) {
	mesh.SetLogger(nil)
	l := mesh.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}
