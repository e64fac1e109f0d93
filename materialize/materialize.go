// Package materialize expands a spec tree into a layered graph of visual
// nodes and coloured edges for a renderer.
//
// Every successor of every relation becomes its own visual node, including
// the repeated successors of a consistent relation that share one spec
// node. The visual graph is therefore always a tree.
package materialize

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/musicmrman99/treespec/spec"
)

// EdgeColor is the colour category of a visual edge.
type EdgeColor int

const (
	// Neutral marks a single-successor relation.
	Neutral EdgeColor = iota
	// Inclusive marks a fan-out where any combination may be taken.
	Inclusive
	// Exclusive marks a fan-out where exactly one may be taken.
	Exclusive
)

var colorNames = map[EdgeColor]string{
	Neutral:   "neutral",
	Inclusive: "inclusive",
	Exclusive: "exclusive",
}

func (c EdgeColor) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("EdgeColor(%d)", int(c))
}

// ParseEdgeColor is the inverse of EdgeColor.String.
func ParseEdgeColor(s string) (EdgeColor, bool) {
	for c, name := range colorNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}

// ColorOf returns the edge colour for a relation.
func ColorOf(r *spec.Relation) EdgeColor {
	switch {
	case r.Multiplicity() == 1:
		return Neutral
	case r.Inclusive():
		return Inclusive
	default:
		return Exclusive
	}
}

// Renderer receives the materialized graph.
type Renderer interface {
	NewNode(id, label string)
	NewEdge(from, to string, color EdgeColor)
}

type options struct {
	ids    IDSource
	logger logrus.FieldLogger
}

// Option configures Materialize.
type Option func(*options)

// WithIDSource sets the source of visual node ids. The default is a fresh
// Counter.
func WithIDSource(ids IDSource) Option {
	return func(o *options) { o.ids = ids }
}

// WithLogger traces each expanded layer at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) { o.logger = logger }
}

// entry is a frontier position: a visual node and the spec node behind it.
type entry struct {
	id   string
	node *spec.Node
}

// Materialize walks the tree rooted at root breadth-first and emits one
// visual node per tree position and one edge per relation target. A nil
// root emits nothing.
//
// Ids are allocated in a fixed order: each layer is processed from its last
// entry to its first, and each entry's targets in order.
func Materialize(root *spec.Node, r Renderer, opts ...Option) {
	if root == nil {
		return
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = NewCounter()
	}

	rootID := o.ids.Next()
	r.NewNode(rootID, root.Name())
	layer := []entry{{id: rootID, node: root}}

	for depth := 0; len(layer) > 0; depth++ {
		var next []entry
		edges := 0
		for i := len(layer) - 1; i >= 0; i-- {
			e := layer[i]
			rel := e.node.Relation()
			if rel == nil {
				continue
			}

			color := ColorOf(rel)
			for _, target := range rel.Targets() {
				id := o.ids.Next()
				r.NewNode(id, target.Name())
				r.NewEdge(e.id, id, color)
				next = append(next, entry{id: id, node: target})
				edges++
			}
		}

		if o.logger != nil {
			o.logger.WithFields(logrus.Fields{
				"depth":    depth,
				"frontier": len(layer),
				"edges":    edges,
			}).Debug("materialized layer")
		}
		layer = next
	}
}
