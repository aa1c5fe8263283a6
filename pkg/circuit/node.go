package circuit

import (
	"fmt"
	"sort"
)

// TerminalRef identifies one terminal of one component. It is a value
// type with structural equality, so it works directly as a map key.
type TerminalRef struct {
	Component string
	Terminal  int
}

func (t TerminalRef) Less(o TerminalRef) bool {
	if t.Component != o.Component {
		return t.Component < o.Component
	}
	return t.Terminal < o.Terminal
}

func (t TerminalRef) String() string {
	return fmt.Sprintf("%s.%d", t.Component, t.Terminal)
}

// NodeMap assigns wired component terminals dense node indices in
// [0, N). Terminals reachable from each other through connections share
// one node, so a third or fourth wire on a terminal just joins the same
// net. Terminals no connection touches stay unmapped; their components
// are floating and contribute nothing to the matrix. Ground is index 0:
// the terminal-0 net of the lowest-ID battery with that terminal wired,
// or the smallest net overall when no such battery exists. Remaining
// nodes are ordered by their smallest member terminal, which makes the
// numbering independent of connection and map iteration order.
type NodeMap struct {
	index map[TerminalRef]int
	wired map[TerminalRef]bool
	nodes int
}

func BuildNodeMap(components []Component, connections []Connection) *NodeMap {
	parent := make(map[TerminalRef]TerminalRef, 2*len(components))
	for _, c := range components {
		for t := 0; t < 2; t++ {
			ref := TerminalRef{Component: c.ID, Terminal: t}
			parent[ref] = ref
		}
	}

	find := func(r TerminalRef) TerminalRef {
		for parent[r] != r {
			parent[r] = parent[parent[r]]
			r = parent[r]
		}
		return r
	}

	wired := make(map[TerminalRef]bool)
	for _, conn := range connections {
		if _, ok := parent[conn.From]; !ok {
			continue // endpoint names a component not in the snapshot
		}
		if _, ok := parent[conn.To]; !ok {
			continue
		}
		wired[conn.From] = true
		wired[conn.To] = true

		ra, rb := find(conn.From), find(conn.To)
		if ra == rb {
			continue
		}
		// The smaller root absorbs the larger, so by induction every
		// root is the lexicographic minimum of its net.
		if rb.Less(ra) {
			ra, rb = rb, ra
		}
		parent[rb] = ra
	}

	rootSet := make(map[TerminalRef]bool)
	for ref := range wired {
		rootSet[find(ref)] = true
	}

	nm := &NodeMap{
		index: make(map[TerminalRef]int, len(wired)),
		wired: wired,
		nodes: len(rootSet),
	}
	if nm.nodes == 0 {
		return nm
	}

	ground, ok := groundRoot(components, wired, find)
	if !ok {
		for r := range rootSet {
			if !ok || r.Less(ground) {
				ground = r
				ok = true
			}
		}
	}

	rest := make([]TerminalRef, 0, len(rootSet)-1)
	for r := range rootSet {
		if r != ground {
			rest = append(rest, r)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Less(rest[j]) })

	number := make(map[TerminalRef]int, len(rootSet))
	number[ground] = 0
	for i, r := range rest {
		number[r] = i + 1
	}
	for ref := range wired {
		nm.index[ref] = number[find(ref)]
	}

	return nm
}

// groundRoot picks the net holding terminal 0 of the lowest-ID battery
// whose terminal 0 is wired. Batteries with a floating negative
// terminal cannot anchor ground.
func groundRoot(components []Component, wired map[TerminalRef]bool, find func(TerminalRef) TerminalRef) (TerminalRef, bool) {
	ids := make([]string, 0, len(components))
	for _, c := range components {
		if c.Kind == KindBattery {
			ids = append(ids, c.ID)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		ref := TerminalRef{Component: id, Terminal: 0}
		if wired[ref] {
			return find(ref), true
		}
	}
	return TerminalRef{}, false
}

// NumNodes reports N, the count of distinct wired nodes including
// ground.
func (nm *NodeMap) NumNodes() int { return nm.nodes }

// NodeOf resolves a terminal to its node index. Unwired terminals have
// no index.
func (nm *NodeMap) NodeOf(ref TerminalRef) (int, bool) {
	idx, ok := nm.index[ref]
	return idx, ok
}

// Wired reports whether at least one connection touches the terminal.
// A component contributes to the matrix only when both of its terminals
// are wired.
func (nm *NodeMap) Wired(ref TerminalRef) bool { return nm.wired[ref] }
