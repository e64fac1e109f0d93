package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmrman99/treespec/dotparser"
	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/uslparser"
)

// execute runs the root command with args and an empty home directory, and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), stdin, args...)
}

// executeIn is execute with HOME set to home.
func executeIn(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "--file", "", "--detailed=false", "a {2XC}-> b")
	require.NoError(t, err)

	want := `a{2XC}->b
spec nodes:   2 (3 references)
visual nodes: 3
edges:        2 (neutral 0, inclusive 0, exclusive 2)
`
	assert.Equal(t, want, out)
}

func TestCheckDetailed(t *testing.T) {
	out, err := execute(t, "", "check", "--file", "", "--detailed", "a->b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Node(a)->Node(b)\n"))
}

func TestCheckParseError(t *testing.T) {
	_, err := execute(t, "", "check", "--file", "", "--detailed=false", "a->")
	require.Error(t, err)
	assert.ErrorIs(t, err, uslparser.DanglingRelation)
	assert.Contains(t, err.Error(), "parsing spec")
}

func TestCheckStdin(t *testing.T) {
	out, err := execute(t, "a -> b\n", "check", "--file", "-", "--detailed=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a->b\n"))
}

func TestRenderDOT(t *testing.T) {
	out, err := execute(t, "", "render", "--file", "", "--output", "", "--format", "dot", "a{2XC}->b")
	require.NoError(t, err)

	want := `digraph "usl" {
  rankdir="BT"
  "0" [label="a"]
  "1" [label="b"]
  "2" [label="b"]
  "0" -> "1" [color="red", class="exclusive"]
  "0" -> "2" [color="red", class="exclusive"]
}
`
	assert.Equal(t, want, out)
}

func TestRenderMermaidToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.mmd")
	out, err := execute(t, "", "render", "--file", "", "--output", path, "--format", "mermaid", "a{2IC}->b")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flowchart BT\n")
	assert.Contains(t, string(data), "linkStyle 1 stroke:blue\n")
}

func TestTree(t *testing.T) {
	out, err := execute(t, "", "tree", "--file", "", "--color", "never", "a{2XD}->(b,c)->d")
	require.NoError(t, err)

	want := `a {2 exclusive}
|- b
|  \- d
\- c
   \- d
`
	assert.Equal(t, want, out)
}

func TestTreeBadColor(t *testing.T) {
	_, err := execute(t, "", "tree", "--file", "", "--color", "sometimes", "a")
	assert.ErrorContains(t, err, `unknown --color "sometimes"`)
}

func TestInspect(t *testing.T) {
	dot, err := execute(t, "", "render", "--file", "", "--output", "", "--format", "dot", "a{2XD}->(b,c)->d")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tree.dot")
	require.NoError(t, os.WriteFile(path, []byte(dot), 0o644))

	out, err := execute(t, "", "inspect", "--file", "", path)
	require.NoError(t, err)

	want := `graph usl: 5 nodes, 4 edges
  neutral:  2
  inclusive: 0
  exclusive: 2
root: a
`
	assert.Equal(t, want, out)
}

func TestInspectRejectsForest(t *testing.T) {
	_, err := execute(t, `digraph G { a [label="a"]; b [label="b"] }`, "inspect", "--file", "-")
	var verr *dotparser.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "single_root", verr.Diagnostics[0].Rule)
}

func TestReadInput(t *testing.T) {
	newCmd := func(file string) *cobra.Command {
		cmd := &cobra.Command{}
		addFileFlag(cmd, "spec")
		require.NoError(t, cmd.Flags().Set("file", file))
		cmd.SetIn(strings.NewReader("from stdin"))
		return cmd
	}

	got, err := readInput(newCmd(""), []string{"a->b"}, true)
	require.NoError(t, err)
	assert.Equal(t, "a->b", got)

	got, err = readInput(newCmd(""), []string{"-"}, true)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	path := filepath.Join(t.TempDir(), "spec.usl")
	require.NoError(t, os.WriteFile(path, []byte("x->y"), 0o644))
	got, err = readInput(newCmd(path), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "x->y", got)

	got, err = readInput(newCmd(""), []string{path}, false)
	require.NoError(t, err)
	assert.Equal(t, "x->y", got)

	_, err = readInput(newCmd(path), []string{"a"}, true)
	assert.ErrorContains(t, err, "not both")

	_, err = readInput(newCmd(""), nil, true)
	assert.ErrorContains(t, err, "nothing to read")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger("debug", "json", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.Level)

	l.WithField("k", "v").Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger("loud", "text", &buf)
	assert.Error(t, err)
	_, err = newLogger("info", "xml", &buf)
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestIDSource(t *testing.T) {
	t.Cleanup(func() { viper.Set("ids", "counter") })

	viper.Set("ids", "uuid")
	ids, err := idSource()
	require.NoError(t, err)
	assert.IsType(t, materialize.UUIDSource{}, ids)

	viper.Set("ids", "counter")
	ids, err = idSource()
	require.NoError(t, err)
	assert.Equal(t, "0", ids.Next())

	viper.Set("ids", "serial")
	_, err = idSource()
	assert.Error(t, err)
}

func TestRunGraphvizMissingBinary(t *testing.T) {
	_, err := runGraphviz(context.Background(), filepath.Join(t.TempDir(), "no-such-dot"), "svg", []byte("digraph {}"))
	assert.ErrorContains(t, err, "-Tsvg")
}

func TestConfigFileInHome(t *testing.T) {
	home := t.TempDir()
	cfg := "rankdir: LR\ncolors:\n  exclusive: purple\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".usl.yaml"), []byte(cfg), 0o644))
	t.Cleanup(func() {
		// Drop the values read from the file so later runs see defaults.
		viper.SetConfigType("yaml")
		_ = viper.ReadConfig(strings.NewReader(""))
	})

	out, err := executeIn(t, home, "", "render", "--file", "", "--output", "", "--format", "dot", "a{2XC}->b")
	require.NoError(t, err)
	assert.Contains(t, out, `rankdir="LR"`)
	assert.Contains(t, out, `[color="purple", class="exclusive"]`)
}
