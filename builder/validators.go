// Package builder provides validation helpers that enforce parameter
// contracts in the shape constructors.
package builder

import (
	"fmt"
	"math"
)

// validateMinSides ensures sides ≥ MinPolygonSides.
func validateMinSides(method string, sides int) error {
	if sides < MinPolygonSides {
		return fmt.Errorf("%s: sides=%d < min=%d: %w", method, sides, MinPolygonSides, ErrTooFewSides)
	}

	return nil
}

// validateLength ensures a named length is finite and strictly positive.
func validateLength(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s=%v must be finite and > 0: %w", method, name, v, ErrBadSize)
	}

	return nil
}

// validateCoord ensures a named coordinate is finite.
func validateCoord(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%v must be finite: %w", method, name, v, ErrBadSize)
	}

	return nil
}
