package dotparser

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// ValueKind discriminates the Value tagged union.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueInt    ValueKind = "int"
	ValueFloat  ValueKind = "float"
	ValueBool   ValueKind = "bool"
)

// Value is a parsed attribute value. Kind determines which typed field is
// populated; Raw always holds the source text.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Raw   string
}

func (v Value) String() string { return v.Raw }

// Attr is a key=value pair from an attribute list.
type Attr struct {
	Key   string
	Value Value
	Pos   Position
}

// Attrs is an attribute list where later entries override earlier ones.
type Attrs []Attr

// Get looks up the last value for key.
func (as Attrs) Get(key string) (Value, bool) {
	for i := len(as) - 1; i >= 0; i-- {
		if as[i].Key == key {
			return as[i].Value, true
		}
	}
	return Value{}, false
}

// Node is a declared or referenced node.
type Node struct {
	ID    string
	Attrs Attrs
	Pos   Position
}

// Label returns the node's label attribute, or its ID when unlabelled.
func (n *Node) Label() string {
	if v, ok := n.Attrs.Get("label"); ok {
		return v.Raw
	}
	return n.ID
}

// Edge is a single directed edge. Chains (a -> b -> c) are expanded.
type Edge struct {
	From  string
	To    string
	Attrs Attrs
	Pos   Position
}

// Graph is a parsed digraph.
type Graph struct {
	Name  string
	Attrs Attrs   // graph [..] and top-level key=value declarations
	Nodes []*Node // declaration order
	Edges []*Edge
}

// NodeByID returns the node with the given ID, or nil if not found.
func (g *Graph) NodeByID(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// EdgesTo returns all edges targeting the given node ID.
func (g *Graph) EdgesTo(id string) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.To == id {
			result = append(result, e)
		}
	}
	return result
}
