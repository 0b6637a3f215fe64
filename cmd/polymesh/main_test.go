package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/mesh"
	"github.com/katalvlaran/polymesh/script"
)

func TestRun_ScriptAndOutputs(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "m.svg")
	obj := filepath.Join(dir, "m.obj")
	png := filepath.Join(dir, "m.png")

	var out bytes.Buffer
	err := run([]string{
		"-shape", "rectangle", "-width", "50", "-height", "30", "-closed",
		"-script", "center 0",
		"-svg", svg, "-obj", obj, "-png", png, "-size", "64",
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "center [0] -> 4\nmesh{V=5 E=16 F=5} euler=2 components=1\n", out.String())
	for _, p := range []string{svg, obj, png} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), p)
	}
	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(b), "<polygon"))
}

func TestRun_ScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.txt")
	require.NoError(t, os.WriteFile(path, []byte("# split and rejoin\nsplit-facet 0 2\njoin-facet 4\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-shape", "rectangle", "-script-file", path}, &out))
	assert.Contains(t, out.String(), "mesh{V=4 E=4 F=1} euler=3 components=1")
}

func TestRun_Polygon(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-shape", "polygon", "-sides", "8", "-closed"}, &out))
	assert.Equal(t, "mesh{V=8 E=16 F=2} euler=2 components=1\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-shape", "hexagram"}, &out))
	assert.Error(t, run([]string{"-script", "a", "-script-file", "b"}, &out))
	assert.Error(t, run([]string{"-size", "0"}, &out))
	assert.Error(t, run([]string{"stray"}, &out))

	err := run([]string{"-script", "explode 1"}, &out)
	assert.ErrorIs(t, err, script.ErrUnknownCommand)

	out.Reset()
	err = run([]string{"-shape", "triangle", "-closed", "-script", "flip 0"}, &out)
	assert.ErrorIs(t, err, mesh.ErrPreconditionViolation)
	assert.Empty(t, out.String())
}
