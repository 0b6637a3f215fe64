// Package builder defines shared constants used by the shape constructors.
package builder

// Method name constants, used to prefix errors with the constructor name.
const (
	methodTriangle       = "Triangle"
	methodRectangle      = "Rectangle"
	methodRegularPolygon = "RegularPolygon"
)

// MinPolygonSides is the smallest number of sides RegularPolygon accepts.
const MinPolygonSides = 3

// Canonical triangle corners.
const (
	triangleLeg = 200.0 // both legs of the right triangle
)

// defaultStartAngle places the first polygon vertex on the +X axis.
const defaultStartAngle = 0.0
