// Package script parses and replays small edit scripts against a mesh.Mesh.
//
// A script is a list of operator commands separated by newlines or ';'.
// Arguments are half-edge handles. Text after '#' is a comment.
//
//	# fan the front facet, then undo it
//	center 0
//	erase-center 4; flip 7
//
// Verbs:
//
//	center E              CreateCenterVertex(E)
//	erase-center E        EraseCenterVertex(E)
//	flip E                FlipEdge(E)
//	split-facet E1 E2     SplitFacet(E1, E2)
//	join-facet E          JoinFacet(E)
//	split-vertex E1 E2    SplitVertex(E1, E2)
//	join-vertex E         JoinVertex(E)
//
// Parse rejects unknown verbs (ErrUnknownCommand) and wrong argument counts
// (ErrArity) before anything runs. Apply stops at the first operator error
// and wraps it with the command number, so errors.Is still reaches the
// mesh sentinels.
package script
