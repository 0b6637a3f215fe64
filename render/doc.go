// Package render draws a mesh.Mesh as SVG or PNG using only the mesh's
// read-only traversal API.
//
// WriteSVG emits one <polygon> per facet. Rasterize and WritePNG use the
// software renderer of github.com/gogpu/gg. By default facets are filled
// blue and outlined red on a 400×400 canvas; options change the size,
// colours and line width, and WithFacetFill colours facets individually
// (for example by dual-graph depth from the bfs package).
package render
