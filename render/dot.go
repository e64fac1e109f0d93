package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/musicmrman99/treespec/dotparser"
	"github.com/musicmrman99/treespec/materialize"
)

// DefaultRankDir draws trees bottom-up, root at the bottom.
const DefaultRankDir = "BT"

// DOTOptions configures WriteDOT.
type DOTOptions struct {
	Name    string // graph name, default "usl"
	RankDir string // Graphviz rankdir, default DefaultRankDir
	Palette Palette
}

// WriteDOT writes g as a Graphviz digraph. Every edge carries both its
// concrete colour and its category as class, so ReadDOT can recover it even
// with a custom palette.
func WriteDOT(w io.Writer, g *materialize.Graph, opts DOTOptions) (int64, error) {
	name := opts.Name
	if name == "" {
		name = "usl"
	}
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = DefaultRankDir
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quoteDOT(name))
	fmt.Fprintf(&b, "  rankdir=%s\n", quoteDOT(rankdir))
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %s [label=%s]\n", quoteDOT(n.ID), quoteDOT(n.Label))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -> %s [color=%s, class=%s]\n",
			quoteDOT(e.From), quoteDOT(e.To),
			quoteDOT(opts.Palette.Color(e.Color)), quoteDOT(e.Color.String()))
	}
	b.WriteString("}\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// ReadDOT parses DOT text into a materialized graph. Edge categories come
// from the class attribute, then from the colour via palette; edges with
// neither are neutral.
func ReadDOT(src []byte, palette Palette) (*materialize.Graph, *dotparser.Graph, error) {
	parsed, err := dotparser.Parse(src)
	if err != nil {
		return nil, nil, err
	}

	g := materialize.NewGraph()
	for _, n := range parsed.Nodes {
		g.NewNode(n.ID, n.Label())
	}
	for _, e := range parsed.Edges {
		color, err := edgeCategory(e, palette)
		if err != nil {
			return nil, nil, err
		}
		g.NewEdge(e.From, e.To, color)
	}
	return g, parsed, nil
}

func edgeCategory(e *dotparser.Edge, palette Palette) (materialize.EdgeColor, error) {
	if class, ok := e.Attrs.Get("class"); ok {
		if c, ok := materialize.ParseEdgeColor(class.Raw); ok {
			return c, nil
		}
		return 0, fmt.Errorf("edge %s -> %s: unknown class %q", e.From, e.To, class.Raw)
	}
	if color, ok := e.Attrs.Get("color"); ok {
		if c, ok := palette.Category(color.Raw); ok {
			return c, nil
		}
		return 0, fmt.Errorf("edge %s -> %s: colour %q is not in the palette", e.From, e.To, color.Raw)
	}
	return materialize.Neutral, nil
}
