// Package polymesh is an in-memory half-edge mesh for planar polygons:
// build a shape, edit it with local Euler operators that keep the mesh
// valid, walk it, and draw or export the result.
//
// 🚀 What is polymesh?
//
//	A small, deterministic library that brings together:
//		• Half-edge storage: vertices, half-edges and facets in handle arenas
//		• Traversal kernel: facet degree, vertex fans, centroids, areas
//		• Euler operators: center vertex, edge flip, facet and vertex split/join
//		• Shape builders: triangle, rectangle, regular polygon
//		• Dual-graph BFS over facets
//		• Edit scripts, SVG/PNG rendering and OBJ export
//
// ✨ Why polymesh?
//
//   - Every operator checks all preconditions before it writes, so a failed
//     edit leaves the mesh exactly as it was.
//   - Each operator has an exact inverse (center/erase-center,
//     split-facet/join-facet, split-vertex/join-vertex, flip/flip).
//   - Errors are sentinels you branch on with errors.Is.
//
// Subpackages:
//
//	mesh/           elements, container, traversal and Euler operators
//	builder/        canonical shapes via functional options
//	bfs/            breadth-first search over the facet dual graph
//	script/         parse and replay edit scripts
//	render/         SVG and PNG output
//	export/         Wavefront OBJ output
//	cmd/polymesh/   command-line driver
//
// Quick example:
//
//	m, _ := builder.NewRectangle(0, 0, 100, 100)
//	hub, _ := m.CreateCenterVertex(0) // four triangles around hub
//	rec, _ := m.Vertex(hub)
//	_, _ = m.EraseCenterVertex(rec.Edge) // back to one square
//
//	go install github.com/katalvlaran/polymesh/cmd/polymesh@latest
package polymesh
