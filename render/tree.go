package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/musicmrman99/treespec/materialize"
)

// TreeOptions configures WriteTree.
type TreeOptions struct {
	// Color enables ANSI colours: blue for inclusive and red for exclusive
	// fan-outs.
	Color bool
}

var treeAttrs = map[materialize.EdgeColor][]color.Attribute{
	materialize.Inclusive: {color.FgBlue},
	materialize.Exclusive: {color.FgRed, color.Bold},
}

// WriteTree writes g as an indented text tree. A node whose children are a
// multi-way fan-out is marked with its width and combination, e.g.
//
//	a {2 exclusive}
//	|- b
//	\- b
func WriteTree(w io.Writer, g *materialize.Graph, opts TreeOptions) error {
	paint := make(map[materialize.EdgeColor]*color.Color)
	for _, c := range []materialize.EdgeColor{materialize.Neutral, materialize.Inclusive, materialize.Exclusive} {
		p := color.New(treeAttrs[c]...)
		if opts.Color && len(treeAttrs[c]) > 0 {
			p.EnableColor()
		} else {
			p.DisableColor()
		}
		paint[c] = p
	}

	tw := &treeWriter{g: g, paint: paint}
	for _, root := range g.Roots() {
		tw.write(root.ID, "", "")
	}
	_, err := io.WriteString(w, tw.b.String())
	return err
}

type treeWriter struct {
	g     *materialize.Graph
	paint map[materialize.EdgeColor]*color.Color
	b     strings.Builder
}

func (tw *treeWriter) write(id, connector, indent string) {
	children := tw.g.EdgesFrom(id)

	tw.b.WriteString(connector)
	tw.b.WriteString(tw.g.Label(id))
	if len(children) > 0 && children[0].Color != materialize.Neutral {
		c := children[0].Color
		tw.b.WriteString(tw.paint[c].Sprint(fmt.Sprintf(" {%d %s}", len(children), c)))
	}
	tw.b.WriteByte('\n')

	for i, e := range children {
		branch, next := "|- ", "|  "
		if i == len(children)-1 {
			branch, next = `\- `, "   "
		}
		tw.write(e.To, indent+tw.paint[e.Color].Sprint(branch), indent+next)
	}
}
