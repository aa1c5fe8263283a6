// Package netlist reads the line-oriented circuit description language:
//
//	# two-element loop
//	supply 12
//	battery b1 voltage=12 internalResistance=1m
//	resistor r1 resistance=100
//	connect b1.1 r1.0
//	connect r1.1 b1.0
//
// Parsing produces an AST; Build turns the AST into the snapshot the
// analysis package consumes.
package netlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type Parser struct {
	parser *participle.Parser[File]
}

func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(netLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

func (p *Parser) Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return p.ParseString(string(data))
}

func (p *Parser) ParseString(input string) (*File, error) {
	// Every statement ends on EOL, including the last line of a file
	// saved without one.
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}

	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

func (p *Parser) ParseFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return p.ParseString(string(data))
}
