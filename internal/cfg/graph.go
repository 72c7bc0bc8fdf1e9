// Package cfg builds and verifies a control-flow graph for each bound
// function, directly porting the shared-node graph construction and the
// all-paths-return check from the original compiler's analysis pass.
package cfg

import (
	"fmt"

	"github.com/ibcompiler/ib/internal/bound"
	"github.com/ibcompiler/ib/internal/typesystem"
)

// Node is one control-flow graph node. Next and OnCondition may alias a
// node already reachable from elsewhere in the graph (e.g. the shared
// <End> node, or an "end if" node two branches both fall through to),
// so the graph is not a tree.
type Node struct {
	IsStart bool
	IsEnd   bool
	Next    *Node
	OnCondition *Node
	RetType *typesystem.Type
	Label   string

	id int
}

type counter struct{ n int }

func (c *counter) next() int { c.n++; return c.n }

// span pairs a subgraph's entry and exit node, mirroring the original's
// ControlFlowSpan: exit is where the caller should keep wiring .Next.
type span struct {
	first *Node
	last  *Node
}

func newNode(c *counter, label string) *Node {
	return &Node{Label: label, id: c.next()}
}

// Build constructs the control-flow graph for one function body, rooted
// at the <Start> node.
func Build(body *bound.Block) *Node {
	c := &counter{}
	start := newNode(c, "<Start>")
	start.IsStart = true
	end := newNode(c, "<End>")
	end.IsEnd = true

	walk(body, start, end, c)
	return start
}

// walk mirrors the Rust `walk`: it builds the subgraph for node, links
// prev.Next to its entry when prev is non-nil, and returns the span so
// the caller can keep chaining.
func walk(node bound.Node, prev *Node, end *Node, c *counter) span {
	var next, last *Node

	switch n := node.(type) {
	case *bound.Block:
		block := newNode(c, "Block")
		newPrev := block
		for _, child := range n.Children {
			s := walk(child, newPrev, end, c)
			newPrev = s.last
		}
		next, last = block, newPrev

	case *bound.ReturnStatement:
		node := newNode(c, "return")
		node.Next = end
		rt := n.Type()
		node.RetType = &rt
		next, last = node, node

	case *bound.IfStatement:
		ifNode := newNode(c, "if")
		endIf := newNode(c, "end if")

		onCond := walk(n.Block, nil, end, c)
		ifNode.OnCondition = onCond.first
		if onCond.last.Next == nil {
			onCond.last.Next = endIf
		}

		if n.Else != nil {
			elseSpan := walk(n.Else, nil, end, c)
			ifNode.Next = elseSpan.first
			if elseSpan.last.Next == nil {
				elseSpan.last.Next = endIf
			}
		} else {
			ifNode.Next = endIf
		}
		next, last = ifNode, endIf

	default:
		node := newNode(c, label(n))
		next, last = node, node
	}

	if prev != nil {
		prev.Next = next
	}
	return span{first: next, last: last}
}

// label renders a short node label for DOT output; faithfulness to the
// original's Display impl is not required since IB has no tooling that
// parses these back.
func label(n bound.Node) string {
	switch n.(type) {
	case *bound.OutputStatement:
		return "output"
	case *bound.WhileLoop:
		return "while"
	case *bound.ForLoop:
		return "for"
	case *bound.FunctionDeclaration:
		return "function"
	default:
		return fmt.Sprintf("%T", n)
	}
}
