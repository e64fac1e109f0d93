package spec

import "fmt"

type frontierKind int

const (
	frontierNode frontierKind = iota
	frontierRelation
	frontierBranch
)

// frontier is the open end of a Builder: a single node awaiting a relation,
// a relation awaiting a target, or the sub-builders of a divergent branch.
type frontier struct {
	kind     frontierKind
	node     *Node
	relation *Relation
	branches []*Builder
}

// Builder constructs spec trees fluently:
//
//	root := spec.NewBuilder("a").
//		To(2, spec.Exclusive).Branch(spec.NewBuilder("b"), spec.NewBuilder("c")).
//		To(1, spec.Exclusive).Node("d").
//		Root()
//
// Builder methods panic on misuse (an invalid relation, or To called while a
// relation is still waiting for its target).
type Builder struct {
	root *Node
	cur  frontier
}

// NewBuilder starts a tree at a root node with the given name.
func NewBuilder(name string) *Builder {
	root := NewNode(name)
	return &Builder{root: root, cur: frontier{kind: frontierNode, node: root}}
}

// To creates one relation and attaches it to every current end. After a
// branch this fans the same relation out to the tip of every branch.
func (b *Builder) To(multiplicity int, combo Combo) *Builder {
	if b.cur.kind == frontierRelation {
		panic("spec: To called on a relation that has no target")
	}
	rel, err := NewRelation(multiplicity, combo)
	if err != nil {
		panic(fmt.Sprintf("spec: %v", err))
	}
	for _, end := range b.Ends() {
		end.relate(rel)
	}
	b.cur = frontier{kind: frontierRelation, relation: rel}
	return b
}

// Default attaches the default relation ({1XC} semantics) to every end.
func (b *Builder) Default() *Builder {
	return b.To(DefaultMultiplicity, DefaultCombo)
}

// Node sets a single successor as the target of the pending relation and
// moves the frontier to it. Called directly after a node or branch, the
// default relation is inserted first.
func (b *Builder) Node(name string) *Builder {
	b.pending()
	next := NewNode(name)
	b.cur.relation.toNode(next)
	b.cur = frontier{kind: frontierNode, node: next}
	return b
}

// Branch sets the roots of the given builders as the divergent targets of
// the pending relation and moves the frontier to those builders.
func (b *Builder) Branch(builders ...*Builder) *Builder {
	b.pending()
	roots := make([]*Node, len(builders))
	for i, sub := range builders {
		roots[i] = sub.Root()
	}
	b.cur.relation.toNodes(roots)
	b.cur = frontier{kind: frontierBranch, branches: builders}
	return b
}

func (b *Builder) pending() {
	if b.cur.kind != frontierRelation {
		b.Default()
	}
}

// Ends returns the terminal nodes awaiting a relation, flattening branches
// in order. It is empty while a relation is waiting for its target.
func (b *Builder) Ends() []*Node {
	switch b.cur.kind {
	case frontierNode:
		return []*Node{b.cur.node}
	case frontierBranch:
		var ends []*Node
		for _, sub := range b.cur.branches {
			ends = append(ends, sub.Ends()...)
		}
		return ends
	default:
		return nil
	}
}

// Root returns the root of the built tree.
func (b *Builder) Root() *Node {
	return b.root
}
