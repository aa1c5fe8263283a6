package netlist

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed circuit description: one statement per line, blank
// lines and # comments ignored.
type File struct {
	Statements []*Statement `(@@ | EOL)*`
}

// Statement is one line. Ordered alternation keeps the "connect" and
// "supply" keywords from being read as component kinds.
type Statement struct {
	Connect   *Connect   `( @@`
	Supply    *Supply    `| @@`
	Component *Component `| @@ ) EOL`
}

// Component declares one circuit element with its property bag.
// Example: battery b1 voltage=12 internalResistance=1m
type Component struct {
	Pos lexer.Position

	Kind  string  `@Ident`
	Name  string  `@Ident`
	Props []*Prop `@@*`
}

// Prop is a single key=value pair. Values are numbers with optional SI
// suffix, or the booleans true/false.
type Prop struct {
	Key   string   `@Ident Equals`
	Value *Literal `@@`
}

type Literal struct {
	Number *string `  @Value`
	Bool   *string `| @("true" | "false")`
}

// Connect joins two component terminals into one node.
// Example: connect b1.1 r1.0
type Connect struct {
	Pos lexer.Position

	From *Ref `"connect" @@`
	To   *Ref `@@`
}

// Ref names a component terminal, "name.terminal".
type Ref struct {
	Pos lexer.Position

	Component string `@Ident`
	Terminal  int    `Dot @Value`
}

// Supply sets the ambient source voltage used by batteries that carry
// no "voltage" property.
// Example: supply 12
type Supply struct {
	Pos lexer.Position

	Value string `"supply" @Value`
}
