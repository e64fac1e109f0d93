// Package render writes materialized upgrade trees as Graphviz DOT, Mermaid
// flowcharts or coloured terminal trees, and reads DOT output back.
package render

import "github.com/musicmrman99/treespec/materialize"

// Palette maps each edge colour category to a concrete colour name.
type Palette map[materialize.EdgeColor]string

// DefaultPalette is black for single successors, blue for inclusive
// fan-outs and red for exclusive fan-outs.
func DefaultPalette() Palette {
	return Palette{
		materialize.Neutral:   "black",
		materialize.Inclusive: "blue",
		materialize.Exclusive: "red",
	}
}

// Color returns the colour for c, falling back to the default palette.
func (p Palette) Color(c materialize.EdgeColor) string {
	if name, ok := p[c]; ok && name != "" {
		return name
	}
	return DefaultPalette()[c]
}

// Category returns the edge colour category whose colour is name.
func (p Palette) Category(name string) (materialize.EdgeColor, bool) {
	for _, c := range []materialize.EdgeColor{materialize.Neutral, materialize.Inclusive, materialize.Exclusive} {
		if p.Color(c) == name {
			return c, true
		}
	}
	return 0, false
}
