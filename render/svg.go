// SPDX-License-Identifier: MIT

package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/polymesh/mesh"
)

// ErrMeshNil is returned when a nil mesh is passed to a renderer.
var ErrMeshNil = errors.New("render: mesh is nil")

const svgNamespace = "http://www.w3.org/2000/svg"

type svgDoc struct {
	XMLName  xml.Name     `xml:"svg"`
	Xmlns    string       `xml:"xmlns,attr"`
	Width    int          `xml:"width,attr"`
	Height   int          `xml:"height,attr"`
	Polygons []svgPolygon `xml:"polygon"`
}

type svgPolygon struct {
	Facet       int     `xml:"data-facet,attr"`
	Points      string  `xml:"points,attr"`
	Fill        string  `xml:"fill,attr"`
	FillOpacity string  `xml:"fill-opacity,attr,omitempty"`
	Stroke      string  `xml:"stroke,attr"`
	StrokeWidth float64 `xml:"stroke-width,attr"`
}

// WriteSVG writes m as an SVG document with one polygon per live facet, in
// ascending facet order. Each polygon lists the facet's boundary positions
// starting at its boundary edge.
func WriteSVG(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	if m == nil {
		return ErrMeshNil
	}
	cfg := newConfig(opts...)
	doc := svgDoc{Xmlns: svgNamespace, Width: cfg.width, Height: cfg.height}
	for _, f := range m.Facets() {
		pts, err := m.FacetPositions(f)
		if err != nil {
			return fmt.Errorf("render: WriteSVG: facet %d: %w", f, err)
		}
		fill := cfg.fillOf(f)
		doc.Polygons = append(doc.Polygons, svgPolygon{
			Facet:       int(f),
			Points:      svgPoints(pts),
			Fill:        svgColor(fill),
			FillOpacity: svgOpacity(fill),
			Stroke:      svgColor(cfg.stroke),
			StrokeWidth: cfg.lineWidth,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render: WriteSVG: %w", err)
	}
	return enc.Close()
}

func svgPoints(pts []mesh.Position) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return b.String()
}

func svgColor(c gg.RGBA) string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// svgOpacity is empty for opaque colours.
func svgOpacity(c gg.RGBA) string {
	if c.A >= 1 {
		return ""
	}
	return strconv.FormatFloat(c.A, 'g', 3, 64)
}
