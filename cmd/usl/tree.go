package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/musicmrman99/treespec/render"
)

var treeCmd = &cobra.Command{
	Use:   "tree [spec]",
	Short: "Print a spec as a terminal tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().String("color", "auto", "Colour fan-outs: auto, always or never")
	addFileFlag(treeCmd, "spec")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("color")

	var useColor bool
	switch mode {
	case "auto":
		useColor = !color.NoColor
	case "always":
		useColor = true
	case "never":
		useColor = false
	default:
		return fmt.Errorf("unknown --color %q (want auto, always or never)", mode)
	}

	g, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}
	return render.WriteTree(cmd.OutOrStdout(), g, render.TreeOptions{Color: useColor})
}
