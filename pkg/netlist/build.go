package netlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/voltlab/dcsim/pkg/circuit"
)

// SI factors for value suffixes. Case matters: "m" is milli while "M"
// and "meg" are mega.
var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"M":   1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)

// ParseValue reads a number with an optional SI suffix: "4.7k" is
// 4700, "100m" is 0.1.
func ParseValue(val string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// Snapshot is the engine-ready form of a parsed file.
type Snapshot struct {
	Components  []circuit.Component
	Connections []circuit.Connection
	Supply      float64
}

// Build validates the AST and assembles the snapshot. Kinds must be
// known, names unique, and connections may only reference terminals 0
// and 1 of declared components.
func Build(f *File) (*Snapshot, error) {
	snap := &Snapshot{}
	declared := make(map[string]bool)

	for _, st := range f.Statements {
		switch {
		case st.Component != nil:
			c := st.Component
			kind := circuit.Kind(strings.ToLower(c.Kind))
			if !kind.Valid() {
				return nil, fmt.Errorf("%s: unknown component kind %q", c.Pos, c.Kind)
			}
			if declared[c.Name] {
				return nil, fmt.Errorf("%s: duplicate component %q", c.Pos, c.Name)
			}
			declared[c.Name] = true

			props := make(circuit.Properties, len(c.Props))
			for _, p := range c.Props {
				v, err := p.Value.value()
				if err != nil {
					return nil, fmt.Errorf("%s: property %s: %w", c.Pos, p.Key, err)
				}
				props[p.Key] = v
			}
			snap.Components = append(snap.Components, circuit.Component{ID: c.Name, Kind: kind, Props: props})

		case st.Supply != nil:
			v, err := ParseValue(st.Supply.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: supply: %w", st.Supply.Pos, err)
			}
			snap.Supply = v
		}
	}

	// Second pass so a connect line may precede the components it names.
	for _, st := range f.Statements {
		if st.Connect == nil {
			continue
		}
		from, err := resolveRef(st.Connect.From, declared)
		if err != nil {
			return nil, err
		}
		to, err := resolveRef(st.Connect.To, declared)
		if err != nil {
			return nil, err
		}
		snap.Connections = append(snap.Connections, circuit.Connection{From: from, To: to})
	}

	return snap, nil
}

func resolveRef(r *Ref, declared map[string]bool) (circuit.TerminalRef, error) {
	if !declared[r.Component] {
		return circuit.TerminalRef{}, fmt.Errorf("%s: connection references undeclared component %q", r.Pos, r.Component)
	}
	if r.Terminal != 0 && r.Terminal != 1 {
		return circuit.TerminalRef{}, fmt.Errorf("%s: terminal must be 0 or 1, got %d", r.Pos, r.Terminal)
	}
	return circuit.TerminalRef{Component: r.Component, Terminal: r.Terminal}, nil
}

func (l *Literal) value() (any, error) {
	if l.Bool != nil {
		return *l.Bool == "true", nil
	}
	v, err := ParseValue(*l.Number)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// LoadFile parses and builds path in one step.
func LoadFile(path string) (*Snapshot, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadString is LoadFile for in-memory sources.
func LoadString(input string) (*Snapshot, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseString(input)
	if err != nil {
		return nil, err
	}
	return Build(f)
}
