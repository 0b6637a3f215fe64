// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/polymesh/mesh"
)

// Rasterize draws every live facet of m onto a new software context: the
// canvas is cleared to the background, then each facet is filled and
// outlined in ascending facet order. The caller owns the returned context
// and must Close it.
func Rasterize(m *mesh.Mesh, opts ...Option) (*gg.Context, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	cfg := newConfig(opts...)
	dc := gg.NewContext(cfg.width, cfg.height)
	dc.ClearWithColor(cfg.background)
	dc.SetLineWidth(cfg.lineWidth)

	for _, f := range m.Facets() {
		if err := drawFacet(dc, m, f, cfg); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("render: Rasterize: facet %d: %w", f, err)
		}
	}
	return dc, nil
}

// WritePNG rasterizes m and encodes the result as PNG.
func WritePNG(w io.Writer, m *mesh.Mesh, opts ...Option) error {
	dc, err := Rasterize(m, opts...)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: WritePNG: %w", err)
	}
	return nil
}

func drawFacet(dc *gg.Context, m *mesh.Mesh, f mesh.FacetID, cfg config) error {
	pts, err := m.FacetPositions(f)
	if err != nil {
		return err
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()

	dc.SetColor(cfg.fillOf(f).Color())
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	if cfg.lineWidth == 0 {
		dc.ClearPath()
		return nil
	}
	dc.SetColor(cfg.stroke.Color())
	return dc.Stroke()
}
