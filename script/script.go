// SPDX-License-Identifier: MIT

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polymesh/mesh"
)

// Result records what one applied command produced.
type Result struct {
	Index int    // 0-based position in the script
	Verb  string // command verb
	Args  []int  // arguments as written

	// Value is the handle the operator returned: the new hub for "center",
	// the surviving facet for "erase-center" and "join-facet", the new
	// half-edge for "split-facet" and "split-vertex", the surviving vertex
	// for "join-vertex". It is -1 for "flip".
	Value int
}

// op binds a verb to its operator.
type op struct {
	arity int
	run   func(m *mesh.Mesh, a []int) (int, error)
}

var ops = map[string]op{
	"center": {1, func(m *mesh.Mesh, a []int) (int, error) {
		v, err := m.CreateCenterVertex(mesh.EdgeID(a[0]))
		return int(v), err
	}},
	"erase-center": {1, func(m *mesh.Mesh, a []int) (int, error) {
		f, err := m.EraseCenterVertex(mesh.EdgeID(a[0]))
		return int(f), err
	}},
	"flip": {1, func(m *mesh.Mesh, a []int) (int, error) {
		return -1, m.FlipEdge(mesh.EdgeID(a[0]))
	}},
	"split-facet": {2, func(m *mesh.Mesh, a []int) (int, error) {
		e, err := m.SplitFacet(mesh.EdgeID(a[0]), mesh.EdgeID(a[1]))
		return int(e), err
	}},
	"join-facet": {1, func(m *mesh.Mesh, a []int) (int, error) {
		f, err := m.JoinFacet(mesh.EdgeID(a[0]))
		return int(f), err
	}},
	"split-vertex": {2, func(m *mesh.Mesh, a []int) (int, error) {
		e, err := m.SplitVertex(mesh.EdgeID(a[0]), mesh.EdgeID(a[1]))
		return int(e), err
	}},
	"join-vertex": {1, func(m *mesh.Mesh, a []int) (int, error) {
		v, err := m.JoinVertex(mesh.EdgeID(a[0]))
		return int(v), err
	}},
}

// Verbs lists the known command verbs in alphabetical order.
func Verbs() []string {
	return []string{"center", "erase-center", "flip", "join-facet", "join-vertex", "split-facet", "split-vertex"}
}

// Parse parses src and checks every command against the command table, so
// a returned Script only holds known verbs with the right arity.
func Parse(src string) (*Script, error) {
	s, err := parseScript.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	for _, c := range s.Commands {
		o, ok := ops[c.Verb]
		if !ok {
			return nil, fmt.Errorf("%d:%d: %q: %w", c.Pos.Line, c.Pos.Column, c.Verb, ErrUnknownCommand)
		}
		if len(c.Args) != o.arity {
			return nil, fmt.Errorf("%d:%d: %s takes %d, got %d: %w",
				c.Pos.Line, c.Pos.Column, c.Verb, o.arity, len(c.Args), ErrArity)
		}
	}

	return s, nil
}

// Apply runs the commands against m in order and returns one Result per
// applied command. It stops at the first failing command; commands before
// it stay applied, and the failing operator itself leaves m untouched.
func (s *Script) Apply(m *mesh.Mesh) ([]Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	out := make([]Result, 0, len(s.Commands))
	for i, c := range s.Commands {
		o, ok := ops[c.Verb]
		if !ok {
			return out, fmt.Errorf("command %d: %q: %w", i+1, c.Verb, ErrUnknownCommand)
		}
		if len(c.Args) != o.arity {
			return out, fmt.Errorf("command %d: %s: %w", i+1, c.Verb, ErrArity)
		}
		v, err := o.run(m, c.Args)
		if err != nil {
			return out, fmt.Errorf("command %d (%s): %w", i+1, c, err)
		}
		mesh.Logger().Debug("script: applied", "index", i, "command", c.String(), "value", v)
		out = append(out, Result{Index: i, Verb: c.Verb, Args: c.Args, Value: v})
	}

	return out, nil
}

// Run parses src and applies it to m.
func Run(m *mesh.Mesh, src string) ([]Result, error) {
	s, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return s.Apply(m)
}

// String renders the command in source form.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Verb)
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// String renders the script one command per line.
func (s *Script) String() string {
	lines := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
