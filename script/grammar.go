package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed edit script: operator commands in source order.
type Script struct {
	Commands []*Command `( @@ | Sep )*`
}

// Command is one operator invocation, e.g. "split-facet 0 2".
type Command struct {
	Pos lexer.Position

	Verb string `@Verb`
	Args []int  `@Int*`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Verb", Pattern: `[A-Za-z][A-Za-z-]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Sep", Pattern: `[;\n]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parseScript = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
)
