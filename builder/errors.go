// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "RegularPolygon: sides=2 < min=3: ...".
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewSides indicates that a polygon was requested with fewer sides
// than the minimum for a closed loop.
var ErrTooFewSides = errors.New("builder: too few sides")

// ErrBadSize indicates a non-positive or non-finite length (radius, height,
// width) or a non-finite coordinate.
var ErrBadSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates that the mesh rejected a construction step
// (nil constructor, a loop the container refused, twins that did not pair).
var ErrConstructFailed = errors.New("builder: construction failed")
