package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/spec"
)

var checkCmd = &cobra.Command{
	Use:   "check [spec]",
	Short: "Parse a spec and print its normalised form",
	Long: `Check parses a spec, prints it back in normalised form (whitespace
removed, default relations without braces) and summarises its size.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("detailed", false, "Print the detailed model form instead")
	addFileFlag(checkCmd, "spec")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	detailed, _ := cmd.Flags().GetBool("detailed")

	root, err := loadSpec(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if detailed {
		fmt.Fprintf(out, "%+v\n", root)
	} else {
		fmt.Fprintln(out, root)
	}

	distinct := make(map[*spec.Node]bool)
	refs := 0
	root.Walk(func(n *spec.Node) {
		distinct[n] = true
		refs++
	})

	g := materialize.Build(root)
	counts := g.ColorCounts()
	fmt.Fprintf(out, "spec nodes:   %d (%d references)\n", len(distinct), refs)
	fmt.Fprintf(out, "visual nodes: %d\n", len(g.Nodes))
	fmt.Fprintf(out, "edges:        %d (neutral %d, inclusive %d, exclusive %d)\n", len(g.Edges),
		counts[materialize.Neutral], counts[materialize.Inclusive], counts[materialize.Exclusive])
	return nil
}
