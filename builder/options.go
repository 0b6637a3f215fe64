// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"fmt"
	"math"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithClosedBack makes every shape two-sided: after the front facet the
// constructor adds the same loop reversed as a back facet and pairs all
// twins, so the result is a closed sphere-like mesh (Euler characteristic 2)
// on which every operator, including the fan-based ones, is defined.
func WithClosedBack() BuilderOption {
	return func(c *builderConfig) {
		c.closedBack = true
	}
}

// WithStartAngle sets θ₀, the angle of the first RegularPolygon vertex.
// Panics on NaN or ±Inf.
func WithStartAngle(theta float64) BuilderOption {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		panic(fmt.Sprintf("builder: WithStartAngle(%v)", theta))
	}
	return func(c *builderConfig) {
		c.startAngle = theta
	}
}
