package materialize

import (
	"sort"

	"github.com/musicmrman99/treespec/spec"
)

// Node is a visual node.
type Node struct {
	ID    string
	Label string
}

// Edge is a coloured, directed visual edge.
type Edge struct {
	From  string
	To    string
	Color EdgeColor
}

// Triple is an edge described by its endpoint labels, which does not
// depend on id allocation order.
type Triple struct {
	Parent string
	Child  string
	Color  EdgeColor
}

// Graph is a Renderer that records everything it is given, in order.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
	index map[string]*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// Build materializes root into a new Graph.
func Build(root *spec.Node, opts ...Option) *Graph {
	g := NewGraph()
	Materialize(root, g, opts...)
	return g
}

// NewNode implements Renderer.
func (g *Graph) NewNode(id, label string) {
	if g.index == nil {
		g.index = make(map[string]*Node)
	}
	n := &Node{ID: id, Label: label}
	g.Nodes = append(g.Nodes, n)
	g.index[id] = n
}

// NewEdge implements Renderer.
func (g *Graph) NewEdge(from, to string, color EdgeColor) {
	g.Edges = append(g.Edges, &Edge{From: from, To: to, Color: color})
}

// Node returns the node with the given id, or nil if not found.
func (g *Graph) Node(id string) *Node {
	return g.index[id]
}

// EdgesFrom returns all edges originating from the given node id.
func (g *Graph) EdgesFrom(id string) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.From == id {
			result = append(result, e)
		}
	}
	return result
}

// Roots returns the nodes with no incoming edge, in insertion order.
func (g *Graph) Roots() []*Node {
	hasParent := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		hasParent[e.To] = true
	}
	var roots []*Node
	for _, n := range g.Nodes {
		if !hasParent[n.ID] {
			roots = append(roots, n)
		}
	}
	return roots
}

// Label returns the label of the node with the given id, or the id itself
// when the node is unknown.
func (g *Graph) Label(id string) string {
	if n := g.Node(id); n != nil {
		return n.Label
	}
	return id
}

// Triples returns every edge as (parent label, child label, colour), sorted.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, Triple{Parent: g.Label(e.From), Child: g.Label(e.To), Color: e.Color})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Parent != b.Parent {
			return a.Parent < b.Parent
		}
		if a.Child != b.Child {
			return a.Child < b.Child
		}
		return a.Color < b.Color
	})
	return out
}

// ColorCounts returns the number of edges per colour.
func (g *Graph) ColorCounts() map[EdgeColor]int {
	counts := make(map[EdgeColor]int)
	for _, e := range g.Edges {
		counts[e.Color]++
	}
	return counts
}
