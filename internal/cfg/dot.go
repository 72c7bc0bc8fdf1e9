package cfg

import (
	"fmt"
	"strconv"
	"strings"
)

type edge struct{ from, to string }

// Dot renders a single graph's body (no digraph wrapper), matching the
// original's dot_graph(include_header=false) so multiple function
// graphs can be concatenated into one digraph block by Digraph.
func (root *Node) Dot() string {
	var nodes []edge
	var conns []edge
	var condConns []edge
	root.dotRecursive(&nodes, &conns, &condConns)

	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "    %s [label=%q]\n", n.from, n.to)
	}
	for _, c := range conns {
		fmt.Fprintf(&b, "    %s -> %s\n", c.from, c.to)
	}
	for _, c := range condConns {
		fmt.Fprintf(&b, "    %s -> %s [label=\"<condition>\"]\n", c.from, c.to)
	}
	return b.String()
}

func (n *Node) dotRecursive(nodes, conns, condConns *[]edge) string {
	id := strconv.Itoa(n.id)
	*nodes = append(*nodes, edge{id, n.Label})

	if n.Next != nil {
		nextID := n.Next.dotRecursive(nodes, conns, condConns)
		c := edge{id, nextID}
		if !contains(*conns, c) {
			*conns = append(*conns, c)
		}
	}
	if n.OnCondition != nil {
		condID := n.OnCondition.dotRecursive(nodes, conns, condConns)
		c := edge{id, condID}
		if !contains(*condConns, c) {
			*condConns = append(*condConns, c)
		}
	}
	return id
}

func contains(es []edge, target edge) bool {
	for _, e := range es {
		if e == target {
			return true
		}
	}
	return false
}

// Digraph concatenates every graph's Dot() body inside one
// `digraph controlflow { ... }` block, for `ibc graph`'s output. No
// subgraph blocks are emitted, and node ids are not made unique across
// graphs.
func Digraph(graphs []*Node) string {
	var b strings.Builder
	b.WriteString("digraph controlflow {")
	for _, g := range graphs {
		b.WriteString(g.Dot())
	}
	b.WriteString("}")
	return b.String()
}
