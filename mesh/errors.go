// SPDX-License-Identifier: MIT
// Package: polymesh/mesh
//
// errors.go - sentinel errors for the mesh package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Operators attach context with %w ("FlipEdge(7): facet degree 4, want 3: ...").
//   • Every operator validates before it mutates, so any of these errors
//     means the mesh was left exactly as it was.

package mesh

import "errors"

// ErrMissingAdjacency indicates that a required next, facet, origin or
// boundary reference is absent (or points at a dead slot) where a walk needs it.
var ErrMissingAdjacency = errors.New("mesh: missing adjacency")

// ErrBorderElement indicates that a fan walk reached a half-edge without an
// opposite. Degree and fan based operators are undefined on a mesh boundary.
var ErrBorderElement = errors.New("mesh: border element")

// ErrPreconditionViolation indicates that caller-supplied handles fail an
// operator's structural precondition (not sharing a facet or an origin,
// wrong facet degree for a flip, identical handles, ...).
var ErrPreconditionViolation = errors.New("mesh: precondition violation")

// ErrIdentityNotFound indicates that a handle does not name a live element
// of this mesh (never allocated, or already removed).
var ErrIdentityNotFound = errors.New("mesh: identity not found")

// ErrInconsistent is reported by CheckIntegrity when live elements disagree
// about their mutual references.
var ErrInconsistent = errors.New("mesh: inconsistent connectivity")
