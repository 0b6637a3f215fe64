// SPDX-License-Identifier: MIT

package script

import "errors"

var (
	// ErrSyntax is returned when a script cannot be tokenised or parsed.
	ErrSyntax = errors.New("script: syntax error")

	// ErrUnknownCommand is returned for a verb outside the command table.
	ErrUnknownCommand = errors.New("script: unknown command")

	// ErrArity is returned when a command has the wrong number of arguments.
	ErrArity = errors.New("script: wrong number of arguments")

	// ErrMeshNil is returned by Apply for a nil mesh.
	ErrMeshNil = errors.New("script: mesh is nil")
)
