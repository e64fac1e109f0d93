package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/spec"
	"github.com/musicmrman99/treespec/uslparser"
)

func addFileFlag(cmd *cobra.Command, what string) {
	cmd.Flags().StringP("file", "f", "", fmt.Sprintf("Read the %s from a file (- for stdin)", what))
}

// readInput returns the text named by --file, or the single argument. A
// file name of "-" reads stdin. When literal is set the argument is the
// text itself, otherwise it is a file name.
func readInput(cmd *cobra.Command, args []string, literal bool) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("give an argument or --file, not both")
	case file == "" && len(args) == 0:
		return "", errors.New("nothing to read: give an argument or --file")
	case file == "" && literal && args[0] != "-":
		return args[0], nil
	case file == "":
		file = args[0]
	}

	if file == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(b), nil
}

// loadSpec parses the spec named by the command line.
func loadSpec(cmd *cobra.Command, args []string) (*spec.Node, error) {
	src, err := readInput(cmd, args, true)
	if err != nil {
		return nil, err
	}
	root, err := uslparser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing spec: %w", err)
	}
	if root == nil {
		return nil, errors.New("spec is empty")
	}
	return root, nil
}

// loadGraph parses the spec named by the command line and materializes it.
func loadGraph(cmd *cobra.Command, args []string) (*materialize.Graph, error) {
	root, err := loadSpec(cmd, args)
	if err != nil {
		return nil, err
	}
	ids, err := idSource()
	if err != nil {
		return nil, err
	}

	opts := []materialize.Option{materialize.WithIDSource(ids)}
	if logger != nil {
		opts = append(opts, materialize.WithLogger(logger))
	}
	g := materialize.Build(root, opts...)
	if logger != nil {
		logger.WithFields(logrus.Fields{"nodes": len(g.Nodes), "edges": len(g.Edges)}).Info("materialized spec")
	}
	return g, nil
}
