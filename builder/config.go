// SPDX-License-Identifier: MIT
// Package: polymesh/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • closedBack = false   (one facet per shape, every twin absent)
//   • startAngle = 0       (first polygon vertex on the +X axis)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// closedBack adds the reversed back facet and pairs all twins.
	closedBack bool
	// startAngle is θ₀ for RegularPolygon, in radians.
	startAngle float64
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		closedBack: false,
		startAngle: defaultStartAngle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
