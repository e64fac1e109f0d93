package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [spec]",
	Short: "Render a spec as DOT, Mermaid or an image",
	Long: `Render materializes a spec and writes it as Graphviz DOT or a Mermaid
flowchart. Any other format (png, svg, pdf, ...) is produced by piping the DOT
through the Graphviz binary named by dot_binary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("format", "dot", "Output format: dot, mermaid or a Graphviz -T format")
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	addFileFlag(renderCmd, "spec")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	g, err := loadGraph(cmd, args)
	if err != nil {
		return err
	}

	out, err := renderGraph(cmd.Context(), g, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, out)
}

func renderGraph(ctx context.Context, g *materialize.Graph, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "mermaid":
		opts := render.MermaidOptions{Direction: viper.GetString("rankdir"), Palette: palette()}
		if err := render.WriteMermaid(&buf, g, opts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "dot", "gv":
		if _, err := render.WriteDOT(&buf, g, dotOptions()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		if _, err := render.WriteDOT(&buf, g, dotOptions()); err != nil {
			return nil, err
		}
		return runGraphviz(ctx, viper.GetString("dot_binary"), format, buf.Bytes())
	}
}

// runGraphviz converts DOT source to format with the Graphviz binary bin.
func runGraphviz(ctx context.Context, bin, format string, dot []byte) ([]byte, error) {
	c := exec.CommandContext(ctx, bin, "-T"+format)
	c.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s -T%s: %w: %s", bin, format, err, msg)
		}
		return nil, fmt.Errorf("%s -T%s: %w", bin, format, err)
	}
	if logger != nil {
		logger.WithField("format", format).WithField("bytes", len(out)).Debug("graphviz finished")
	}
	return out, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if logger != nil {
		logger.WithField("path", path).Info("wrote output")
	}
	return nil
}
