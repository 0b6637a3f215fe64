// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/polymesh/mesh"
)

// Default canvas and styling.
const (
	DefaultWidth     = 400
	DefaultHeight    = 400
	DefaultLineWidth = 1.0
)

// Option customises rendering. Option constructors panic on meaningless
// values; rendering itself returns errors.
type Option func(*config)

type config struct {
	width, height int
	stroke        gg.RGBA
	fill          gg.RGBA
	background    gg.RGBA
	facetFill     func(mesh.FacetID) gg.RGBA
	lineWidth     float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		width:      DefaultWidth,
		height:     DefaultHeight,
		stroke:     gg.Red,
		fill:       gg.Blue,
		background: gg.White,
		lineWidth:  DefaultLineWidth,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// fillOf resolves the fill colour of facet f.
func (c config) fillOf(f mesh.FacetID) gg.RGBA {
	if c.facetFill != nil {
		return c.facetFill(f)
	}
	return c.fill
}

// WithSize sets the canvas size in pixels. Panics unless both are positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%d, %d): size must be positive", width, height))
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithStroke sets the outline colour of every facet.
func WithStroke(col gg.RGBA) Option {
	return func(c *config) { c.stroke = col }
}

// WithFill sets the fill colour of every facet.
func WithFill(col gg.RGBA) Option {
	return func(c *config) { c.fill = col }
}

// WithBackground sets the PNG background. SVG output has no background.
func WithBackground(col gg.RGBA) Option {
	return func(c *config) { c.background = col }
}

// WithFacetFill picks a fill per facet, overriding WithFill. A nil fn
// restores the uniform fill.
func WithFacetFill(fn func(mesh.FacetID) gg.RGBA) Option {
	return func(c *config) { c.facetFill = fn }
}

// WithLineWidth sets the outline width. Panics on negative, NaN or Inf.
func WithLineWidth(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("render: WithLineWidth(%v): width must be finite and non-negative", w))
	}
	return func(c *config) { c.lineWidth = w }
}
