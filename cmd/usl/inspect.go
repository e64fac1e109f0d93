package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/musicmrman99/treespec/dotparser"
	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.dot]",
	Short: "Read a rendered DOT file back and lint it",
	Long: `Inspect reads a DOT file written by "usl render", checks that it is a
single tree with categorised edges, and summarises it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	addFileFlag(inspectCmd, "DOT source")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	src, err := readInput(cmd, args, false)
	if err != nil {
		return err
	}

	g, parsed, err := render.ReadDOT([]byte(src), palette())
	if err != nil {
		return fmt.Errorf("reading DOT: %w", err)
	}

	diagnostics, verr := dotparser.ValidateOrError(parsed)
	for _, d := range diagnostics {
		fmt.Fprintln(cmd.ErrOrStderr(), d)
	}
	if verr != nil {
		return verr
	}

	out := cmd.OutOrStdout()
	name := parsed.Name
	if name == "" {
		name = "(anonymous)"
	}
	fmt.Fprintf(out, "graph %s: %d nodes, %d edges\n", name, len(g.Nodes), len(g.Edges))
	counts := g.ColorCounts()
	for _, c := range []materialize.EdgeColor{materialize.Neutral, materialize.Inclusive, materialize.Exclusive} {
		fmt.Fprintf(out, "  %-9s %d\n", c.String()+":", counts[c])
	}

	var roots []string
	for _, n := range g.Roots() {
		roots = append(roots, n.Label)
	}
	fmt.Fprintf(out, "root: %s\n", strings.Join(roots, ", "))
	return nil
}
