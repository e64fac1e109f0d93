package spec

import (
	"fmt"
	"strings"
)

// Node is a named position in a spec tree. Its outgoing edges are fully
// described by its relation, if any.
type Node struct {
	name     string
	relation *Relation
}

// NewNode returns a leaf node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Relation returns the node's outgoing relation, or nil for a leaf.
func (n *Node) Relation() *Relation { return n.relation }

// Leaf reports whether the node has no outgoing relation.
func (n *Node) Leaf() bool { return n.relation == nil }

func (n *Node) relate(r *Relation) { n.relation = r }

// Equal reports structural equality. Identity is never compared, so two
// distinct nodes with the same name and shape are equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.name == other.name && n.relation.Equal(other.relation)
}

// String renders the subtree rooted at n as USL text.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, false)
	return b.String()
}

// Format implements fmt.Formatter. The %+v verb prints the detailed form,
// wrapping each name as Node(name); every other verb formats String() as a
// string would be.
func (n *Node) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		var b strings.Builder
		n.write(&b, true)
		_, _ = f.Write([]byte(b.String()))
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), n.String())
}

func (n *Node) write(b *strings.Builder, detailed bool) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if detailed {
		b.WriteString("Node(" + n.name + ")")
	} else {
		b.WriteString(n.name)
	}
	if n.relation != nil {
		n.relation.write(b, detailed)
	}
}

// Walk calls fn for every node reachable from n in depth-first order. A node
// shared by a consistent relation is visited once per reference.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	if n.relation == nil {
		return
	}
	for _, t := range n.relation.Targets() {
		t.Walk(fn)
	}
}
