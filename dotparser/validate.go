package dotparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the graph is not a well-formed materialized tree.
	Error Severity = iota
	// Warning means the graph can be read but some information is missing.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	NodeID   string // optional
	Edge     *Edge  // optional
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.NodeID != "" {
		fmt.Fprintf(&b, " (node: %s)", d.NodeID)
	}
	if d.Edge != nil {
		fmt.Fprintf(&b, " (edge: %s -> %s)", d.Edge.From, d.Edge.To)
	}
	return b.String()
}

// LintRule is a single validation rule.
type LintRule interface {
	Name() string
	Apply(g *Graph) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs the built-in tree rules plus any extra rules and returns
// every diagnostic.
func Validate(g *Graph, extraRules ...LintRule) []Diagnostic {
	rules := append(builtInRules(), extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(g)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. All diagnostics are returned either way.
func ValidateOrError(g *Graph, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(g, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		singleRootRule{},
		singleParentRule{},
		edgeColorRule{},
		nodeLabelRule{},
	}
}

// singleRootRule: a non-empty tree has exactly one node without a parent.
type singleRootRule struct{}

func (singleRootRule) Name() string { return "single_root" }

func (r singleRootRule) Apply(g *Graph) []Diagnostic {
	if len(g.Nodes) == 0 {
		return nil
	}
	var roots []string
	for _, n := range g.Nodes {
		if len(g.EdgesTo(n.ID)) == 0 {
			roots = append(roots, n.ID)
		}
	}
	if len(roots) == 1 {
		return nil
	}
	return []Diagnostic{{
		Rule:     r.Name(),
		Severity: Error,
		Message:  fmt.Sprintf("expected exactly one root, found %d (%s)", len(roots), strings.Join(roots, ", ")),
	}}
}

// singleParentRule: every node has at most one incoming edge, so the graph
// is a tree and not a DAG.
type singleParentRule struct{}

func (singleParentRule) Name() string { return "single_parent" }

func (r singleParentRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, n := range g.Nodes {
		if in := g.EdgesTo(n.ID); len(in) > 1 {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Error,
				Message:  fmt.Sprintf("node has %d parents", len(in)),
				NodeID:   n.ID,
			})
		}
	}
	return diags
}

// edgeColorRule: every edge says which fan-out category it belongs to.
type edgeColorRule struct{}

func (edgeColorRule) Name() string { return "edge_color" }

func (r edgeColorRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, e := range g.Edges {
		_, hasClass := e.Attrs.Get("class")
		_, hasColor := e.Attrs.Get("color")
		if !hasClass && !hasColor {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Warning,
				Message:  "edge has neither class nor color; read as neutral",
				Edge:     e,
			})
		}
	}
	return diags
}

// nodeLabelRule: every node carries the name of its spec node.
type nodeLabelRule struct{}

func (nodeLabelRule) Name() string { return "node_label" }

func (r nodeLabelRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, n := range g.Nodes {
		if _, ok := n.Attrs.Get("label"); !ok {
			diags = append(diags, Diagnostic{
				Rule:     r.Name(),
				Severity: Warning,
				Message:  "node has no label; its id is used instead",
				NodeID:   n.ID,
			})
		}
	}
	return diags
}
