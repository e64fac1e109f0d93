package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// Combo is the combinatorial semantics of a multi-target relation.
type Combo byte

const (
	// Exclusive means exactly one of the targets may be taken.
	Exclusive Combo = 'X'
	// Inclusive means any combination of the targets may be taken.
	Inclusive Combo = 'I'
)

// ParseCombo converts a relation-spec letter into a Combo.
func ParseCombo(c byte) (Combo, bool) {
	switch Combo(c) {
	case Exclusive, Inclusive:
		return Combo(c), true
	}
	return 0, false
}

func (c Combo) String() string {
	switch c {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	default:
		return fmt.Sprintf("Combo(%q)", byte(c))
	}
}

// Structure says whether a relation's target is one node repeated
// (Consistent) or a list of independent subtrees (Divergent).
type Structure byte

const (
	Consistent Structure = 'C'
	Divergent  Structure = 'D'
)

// ParseStructure converts a relation-spec letter into a Structure.
func ParseStructure(c byte) (Structure, bool) {
	switch Structure(c) {
	case Consistent, Divergent:
		return Structure(c), true
	}
	return 0, false
}

func (s Structure) String() string {
	switch s {
	case Consistent:
		return "consistent"
	case Divergent:
		return "divergent"
	default:
		return fmt.Sprintf("Structure(%q)", byte(s))
	}
}

// Multiplicity bounds. A relation spec carries a single digit.
const (
	MinMultiplicity = 1
	MaxMultiplicity = 9
)

// Default relation settings, used when USL text gives no relation spec.
const (
	DefaultMultiplicity = 1
	DefaultCombo        = Exclusive
)

// Relation is the fan-out from one node to its successors.
//
// A consistent relation holds a single node that stands for all
// Multiplicity successors; the node is shared, never cloned. A divergent
// relation holds exactly Multiplicity independent nodes.
type Relation struct {
	multiplicity int
	combo        Combo
	node         *Node   // consistent target
	branches     []*Node // divergent targets
}

// NewRelation returns a relation with no target yet.
func NewRelation(multiplicity int, combo Combo) (*Relation, error) {
	if multiplicity < MinMultiplicity || multiplicity > MaxMultiplicity {
		return nil, fmt.Errorf("multiplicity %d out of range %d-%d", multiplicity, MinMultiplicity, MaxMultiplicity)
	}
	if _, ok := ParseCombo(byte(combo)); !ok {
		return nil, fmt.Errorf("not a valid combinatorial spec: %q", byte(combo))
	}
	return &Relation{multiplicity: multiplicity, combo: combo}, nil
}

// Multiplicity returns the number of successors the relation represents.
func (r *Relation) Multiplicity() int { return r.multiplicity }

// Combo returns the relation's combinatorial semantics.
func (r *Relation) Combo() Combo { return r.combo }

// Inclusive reports whether any combination of targets may be taken.
func (r *Relation) Inclusive() bool { return r.combo == Inclusive }

// Structure reports whether the target is consistent or divergent.
func (r *Relation) Structure() Structure {
	if r.branches != nil {
		return Divergent
	}
	return Consistent
}

// Target returns the consistent target, or nil for a divergent relation.
func (r *Relation) Target() *Node { return r.node }

// Branches returns the divergent targets, or nil for a consistent relation.
func (r *Relation) Branches() []*Node { return r.branches }

// Targets returns one entry per successor. For a consistent relation every
// entry is the same *Node.
func (r *Relation) Targets() []*Node {
	if r.branches != nil {
		return r.branches
	}
	if r.node == nil {
		return nil
	}
	out := make([]*Node, r.multiplicity)
	for i := range out {
		out[i] = r.node
	}
	return out
}

// IsDefault reports whether the relation is the implicit one ({1XC}).
func (r *Relation) IsDefault() bool {
	return r.multiplicity == DefaultMultiplicity &&
		r.combo == DefaultCombo &&
		r.Structure() == Consistent
}

// Code returns the three-character relation spec body, e.g. "2ID".
func (r *Relation) Code() string {
	return strconv.Itoa(r.multiplicity) + string(r.combo) + string(r.Structure())
}

func (r *Relation) toNode(n *Node) {
	r.node = n
	r.branches = nil
}

func (r *Relation) toNodes(ns []*Node) {
	r.node = nil
	r.branches = ns
}

// Equal reports structural equality: same multiplicity, same combo and
// equal targets. A consistent target never equals a divergent one.
func (r *Relation) Equal(other *Relation) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.multiplicity != other.multiplicity || r.combo != other.combo {
		return false
	}
	if (r.branches == nil) != (other.branches == nil) {
		return false
	}
	if r.branches == nil {
		return r.node.Equal(other.node)
	}
	if len(r.branches) != len(other.branches) {
		return false
	}
	for i := range r.branches {
		if !r.branches[i].Equal(other.branches[i]) {
			return false
		}
	}
	return true
}

// String renders the relation as USL text starting at the arrow. The
// relation spec is omitted when the relation is the default one.
func (r *Relation) String() string {
	var b strings.Builder
	r.write(&b, false)
	return b.String()
}

func (r *Relation) write(b *strings.Builder, detailed bool) {
	if !r.IsDefault() {
		b.WriteString("{" + r.Code() + "}")
	}
	b.WriteString("->")

	if r.branches == nil {
		r.node.write(b, detailed)
		return
	}
	b.WriteByte('(')
	for i, n := range r.branches {
		if i > 0 {
			b.WriteString(", ")
		}
		n.write(b, detailed)
	}
	b.WriteByte(')')
}
