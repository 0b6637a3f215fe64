// Package builder provides functional-options constructors for the canonical
// polygon meshes: a triangle, an axis-aligned rectangle and a regular polygon.
//
// The package offers the following components:
//
//   - Orchestration:
//     – BuildMesh(bopts, cons...): new mesh, resolved options, constructors in order.
//     – NewTriangle / NewRectangle / NewRegularPolygon: one-shape shortcuts.
//   - Constructors (type Constructor):
//     – Triangle():                              (0,0), (0,200), (200,0).
//     – Rectangle(cornerX, cornerY, height, width).
//     – RegularPolygon(centerX, centerY, radius, sides).
//   - Options (type BuilderOption):
//     – WithClosedBack():   add the reversed back facet and pair all twins.
//     – WithStartAngle(θ₀): angle of the first polygon vertex.
//
// Guarantees:
//
//   - Each shape is one facet whose half-edge i leaves vertex i; vertex
//     handles follow the documented corner order.
//   - Without WithClosedBack no half-edge has an opposite: the shape is all
//     border, so fan-based operators (vertex degree, erase center vertex,
//     split/join vertex) report mesh.ErrBorderElement on it.
//   - Fast-fail on invalid option values via panics in option constructors;
//     sentinel errors (ErrTooFewSides, ErrBadSize, ErrConstructFailed) for
//     invalid build parameters.
package builder
