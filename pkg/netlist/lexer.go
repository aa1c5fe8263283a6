package netlist

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// netLexer defines the lexical structure of circuit description files.
// Value must require a leading digit: "b1.1" has to lex as Ident Dot
// Value for terminal references, so a bare fraction is written "0.5",
// never ".5". Suffix letters fold SI factors into the number token
// ("4.7k", "100m", "1meg").
var netLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Numbers, optionally with exponent and SI suffix
	{Name: "Value", Pattern: `[-+]?\d+(?:\.\d+)?(?:[eE][-+]?\d+)?(?:meg|[TGMKkmunpf])?`},

	// Identifiers: component kinds, names, property keys, booleans
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "Equals", Pattern: `=`},
	{Name: "Dot", Pattern: `\.`},

	// Statements are line-oriented, so newlines are real tokens
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
