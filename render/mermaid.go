package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/musicmrman99/treespec/materialize"
)

// MermaidOptions configures WriteMermaid.
type MermaidOptions struct {
	Direction string // flowchart direction, default "BT"
	Palette   Palette
}

// WriteMermaid writes g as a Mermaid flowchart, colouring each link with a
// linkStyle line.
func WriteMermaid(w io.Writer, g *materialize.Graph, opts MermaidOptions) error {
	dir := opts.Direction
	if dir == "" {
		dir = DefaultRankDir
	}

	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", dir)
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %s[\"%s\"]\n", mermaidID(n.ID), mermaidLabel(n.Label))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s --> %s\n", mermaidID(e.From), mermaidID(e.To))
	}
	for i, e := range g.Edges {
		fmt.Fprintf(&b, "  linkStyle %d stroke:%s\n", i, opts.Palette.Color(e.Color))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// mermaidID turns a visual id into a Mermaid node id: numeric and UUID ids
// are not valid on their own.
func mermaidID(id string) string {
	var b strings.Builder
	b.WriteByte('n')
	for _, r := range id {
		if r == '-' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func mermaidLabel(label string) string {
	return strings.ReplaceAll(label, `"`, "#quot;")
}
