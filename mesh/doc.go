// Package mesh provides a planar half-edge polygon mesh together with the
// Euler operators that edit it while keeping its connectivity consistent.
//
// A mesh is made of three kinds of element, owned by one Mesh container and
// addressed by typed integer handles:
//
//   - Vertex:   a Position plus one outgoing half-edge.
//   - HalfEdge: a directed side with origin vertex, owning facet, opposite
//     (twin) and next half-edge in the facet loop.
//   - Facet:    a polygon, known through any half-edge of its loop.
//
// Conventions:
//
//	dst(e)          = origin(next(e))
//	origin(opp(e))  = dst(e)
//	rotation r(s)   = next(opp(s))     // outgoing half-edges around origin(s)
//
// NoVertex, NoEdge and NoFacet (-1) mark absent references; a half-edge
// without an opposite lies on the border of the mesh.
//
// Storage:
//
// Elements live in index arenas. Removal tombstones a slot and pushes it on
// a free stack; the next insertion of that kind reuses the most recently
// freed slot. A handle held across a removal is therefore stale, and reading
// a removed handle fails with ErrIdentityNotFound.
//
// Core Methods:
//
//	// Construction
//	New() *Mesh
//	AddVertex(p Position) VertexID                     // O(1)
//	AddFacetLoop(vs []VertexID) (FacetID, error)       // O(n)
//	LinkOpposite(a, b EdgeID) error                    // O(1)
//	PairOpposites() int                                // O(E)
//
//	// Traversal
//	FacetDegree(f) / VertexDegree(v)                   // O(d)
//	CenterPosition(e) / FacetArea(e) / PreviousEdge(e) // O(d)
//	FacetEdges(f) / FacetVertices(f) / FacetPositions(f)
//	VertexFan(v) / FacetNeighbors(f)
//
//	// Euler operators (each is atomic: on error nothing changed)
//	CreateCenterVertex(e) (VertexID, error)    ↔  EraseCenterVertex(spoke) (FacetID, error)
//	SplitFacet(e1, e2) (EdgeID, error)         ↔  JoinFacet(e) (FacetID, error)
//	SplitVertex(e1, e2) (EdgeID, error)        ↔  JoinVertex(e) (VertexID, error)
//	FlipEdge(e) error                          // self-inverse up to direction
//
//	// Counts and checks
//	VertexCount() / EdgeCount() / FacetCount() // EdgeCount counts half-edges
//	EulerCharacteristic() float64              // V − E/2 + F
//	CheckIntegrity() error
//	Clone() *Mesh
//
// Errors:
//
//	ErrMissingAdjacency      - a needed next/facet/origin/boundary reference is absent.
//	ErrBorderElement         - a rotation reached a half-edge without opposite.
//	ErrPreconditionViolation - handles fail an operator's structural precondition.
//	ErrIdentityNotFound      - a handle does not name a live element.
//	ErrInconsistent          - CheckIntegrity found mutually disagreeing references.
//
// Concurrency:
//
// A Mesh has a single writer and no internal locking. Callers serialize
// access, or hand readers a Clone.
//
// Logging:
//
// Operators emit slog Debug records through the package logger, silent by
// default; see SetLogger.
package mesh
