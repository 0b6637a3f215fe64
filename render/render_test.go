package render_test

import (
	"bytes"
	"encoding/xml"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polymesh/builder"
	"github.com/katalvlaran/polymesh/mesh"
	"github.com/katalvlaran/polymesh/render"
)

type parsedSVG struct {
	Width    int `xml:"width,attr"`
	Height   int `xml:"height,attr"`
	Polygons []struct {
		Facet       int    `xml:"data-facet,attr"`
		Points      string `xml:"points,attr"`
		Fill        string `xml:"fill,attr"`
		FillOpacity string `xml:"fill-opacity,attr"`
		Stroke      string `xml:"stroke,attr"`
	} `xml:"polygon"`
}

func decodeSVG(t *testing.T, b []byte) parsedSVG {
	t.Helper()
	var doc parsedSVG
	require.NoError(t, xml.Unmarshal(b, &doc))
	return doc
}

func TestWriteSVG_Defaults(t *testing.T) {
	m, err := builder.NewRectangle(0, 0, 10, 20)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, m))
	doc := decodeSVG(t, buf.Bytes())

	assert.Equal(t, render.DefaultWidth, doc.Width)
	assert.Equal(t, render.DefaultHeight, doc.Height)
	require.Len(t, doc.Polygons, 1)
	p := doc.Polygons[0]
	assert.Equal(t, "0,0 0,10 20,10 20,0", p.Points)
	assert.Equal(t, "#0000ff", p.Fill)
	assert.Equal(t, "#ff0000", p.Stroke)
	assert.Empty(t, p.FillOpacity)
}

func TestWriteSVG_OnePolygonPerFacet(t *testing.T) {
	m, err := builder.NewRegularPolygon(100, 100, 50, 7)
	require.NoError(t, err)
	_, err = m.CreateCenterVertex(0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteSVG(&buf, m,
		render.WithSize(200, 120),
		render.WithFacetFill(func(f mesh.FacetID) gg.RGBA {
			if f%2 == 0 {
				return gg.RGBA2(0, 1, 0, 0.5)
			}
			return gg.Black
		}),
	))
	doc := decodeSVG(t, buf.Bytes())

	assert.Equal(t, 200, doc.Width)
	assert.Equal(t, 120, doc.Height)
	require.Len(t, doc.Polygons, m.FacetCount())
	for i, p := range doc.Polygons {
		assert.Equal(t, i, p.Facet)
		if i%2 == 0 {
			assert.Equal(t, "#00ff00", p.Fill)
			assert.Equal(t, "0.5", p.FillOpacity)
		} else {
			assert.Equal(t, "#000000", p.Fill)
		}
	}
}

func TestRasterize_Pixels(t *testing.T) {
	m, err := builder.NewRectangle(10, 10, 50, 50)
	require.NoError(t, err)

	dc, err := render.Rasterize(m, render.WithSize(100, 100))
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	assert.Equal(t, 100, img.Bounds().Dx())

	r, g, b, _ := img.At(35, 35).RGBA()
	assert.Less(t, r>>8, uint32(40), "inside should be blue")
	assert.Less(t, g>>8, uint32(40))
	assert.Greater(t, b>>8, uint32(200))

	r, g, b, _ = img.At(85, 85).RGBA()
	assert.Greater(t, r>>8, uint32(200), "outside should be background")
	assert.Greater(t, g>>8, uint32(200))
	assert.Greater(t, b>>8, uint32(200))
}

func TestWritePNG(t *testing.T) {
	m, err := builder.NewTriangle(builder.WithClosedBack())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, m, render.WithSize(64, 48), render.WithLineWidth(0)))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.WriteSVG(&buf, nil), render.ErrMeshNil)
	assert.ErrorIs(t, render.WritePNG(&buf, nil), render.ErrMeshNil)
	_, err := render.Rasterize(nil)
	assert.ErrorIs(t, err, render.ErrMeshNil)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithSize(10, -1) })
	assert.Panics(t, func() { render.WithLineWidth(-1) })
	assert.NotPanics(t, func() { render.WithLineWidth(0) })
}
