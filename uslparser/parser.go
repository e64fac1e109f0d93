package uslparser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/musicmrman99/treespec/scan"
	"github.com/musicmrman99/treespec/spec"
)

const (
	arrow = "->"

	// reservedNameChars may not appear in a node name.
	reservedNameChars = "{}(),->"
)

var branchPairs = []scan.Pair{{Open: "(", Close: ")"}}

// Parse parses USL text and returns the root of the spec tree.
// Empty (or whitespace-only) input returns a nil root and no error.
// Returns a *ParseError on failure.
func Parse(src string) (*spec.Node, error) {
	b, err := ParseBuilder(src)
	if err != nil || b == nil {
		return nil, err
	}
	return b.Root(), nil
}

// ParseBuilder is like Parse but returns the builder, so the tree can be
// extended before calling Root. Its frontier is the last node or branch in
// the text.
func ParseBuilder(src string) (*spec.Builder, error) {
	p := &parser{input: src}
	return p.parse(stripSpace(src))
}

type parser struct {
	input string
}

// relSpec is a parsed relation spec such as {2ID}.
type relSpec struct {
	raw          string
	multiplicity int
	combo        spec.Combo
	structure    spec.Structure
}

var defaultRelSpec = relSpec{
	multiplicity: spec.DefaultMultiplicity,
	combo:        spec.DefaultCombo,
	structure:    spec.Consistent,
}

func (p *parser) errorf(kind Kind, fragment, format string, args ...any) error {
	return &ParseError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Fragment: fragment,
		Input:    p.input,
	}
}

// parse parses a whole spec: a node followed by any number of relations.
// The relation spec read with each node or branch configures the relation
// that follows it.
func (p *parser) parse(text string) (*spec.Builder, error) {
	if text == "" {
		return nil, nil
	}

	name, rel, rest, more, err := p.nextNode(text)
	if err != nil {
		return nil, err
	}
	b := spec.NewBuilder(name)

	for more {
		if rest == "" && rel != nil {
			return nil, p.errorf(RelationSpecWithoutRelation, rel.raw, "cannot have relation spec without relation")
		}
		if rest == "" {
			return nil, p.errorf(DanglingRelation, text, "relation has no target")
		}

		r := defaultRelSpec
		if rel != nil {
			r = *rel
		}
		b.To(r.multiplicity, r.combo)

		switch r.structure {
		case spec.Consistent:
			name, rel, rest, more, err = p.nextNode(rest)
			if err != nil {
				return nil, err
			}
			b.Node(name)

		case spec.Divergent:
			var subs []*spec.Builder
			subs, rel, rest, more, err = p.nextBranch(rest, r.multiplicity)
			if err != nil {
				return nil, err
			}
			b.Branch(subs...)
		}
	}

	if rel != nil {
		return nil, p.errorf(RelationSpecWithoutRelation, rel.raw, "cannot have relation spec without relation")
	}
	return b, nil
}

// nextNode splits off the next node spec and the relation spec attached to
// it. more reports whether an arrow followed it; rest is the text after
// that arrow.
func (p *parser) nextNode(text string) (name string, rel *relSpec, rest string, more bool, err error) {
	part, rest, more := strings.Cut(text, arrow)
	if part == "" {
		return "", nil, "", false, p.errorf(DanglingRelation, text, "relation has no source")
	}

	name, rel, err = p.splitRelSpec(part)
	if err != nil {
		return "", nil, "", false, err
	}
	if name == "" {
		return "", nil, "", false, p.errorf(BlankName, part, "node names cannot be blank")
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return "", nil, "", false, p.errorf(InvalidName, name, "node name contains one of %q", reservedNameChars)
	}
	return name, rel, rest, more, nil
}

// nextBranch splits off the next branch spec, which must hold exactly n
// comma-separated sub-specs, and the relation spec attached to it.
func (p *parser) nextBranch(text string, n int) (subs []*spec.Builder, rel *relSpec, rest string, more bool, err error) {
	if !strings.HasPrefix(text, "(") {
		return nil, nil, "", false, p.errorf(ExpectedBranch, text, "divergent relation must be followed by a branch list")
	}
	inner, ok := scan.Between(text, "(", ")", true)
	if !ok {
		return nil, nil, "", false, p.errorf(UnterminatedBranch, text, "branch list has no closing bracket")
	}
	branch := "(" + inner + ")"

	tail, rest, more := strings.Cut(text[len(branch):], arrow)
	if tail != "" {
		if !strings.HasPrefix(tail, "{") {
			return nil, nil, "", false, p.errorf(UnexpectedText, tail, "unexpected text after branch list")
		}
		if _, rel, err = p.splitRelSpec(tail); err != nil {
			return nil, nil, "", false, err
		}
	}

	parts := scan.SplitTopLevel(inner, ",", branchPairs)
	if len(parts) != n {
		return nil, nil, "", false, p.errorf(BranchArity, branch, "expected %d branches, got %d", n, len(parts))
	}

	subs = make([]*spec.Builder, 0, len(parts))
	for _, part := range parts {
		sub, err := p.parse(part)
		if err != nil {
			return nil, nil, "", false, err
		}
		if sub == nil {
			return nil, nil, "", false, p.errorf(BlankName, branch, "branches cannot be blank")
		}
		subs = append(subs, sub)
	}
	return subs, rel, rest, more, nil
}

// splitRelSpec separates a trailing {...} relation spec from the text before
// it. Nothing may follow the closing brace.
func (p *parser) splitRelSpec(part string) (string, *relSpec, error) {
	open := strings.IndexByte(part, '{')
	if open < 0 {
		if strings.ContainsRune(part, '}') {
			return "", nil, p.errorf(MalformedRelationSpec, part, "'}' without matching '{'")
		}
		return part, nil, nil
	}

	body, ok := scan.Between(part[open:], "{", "}", false)
	if !ok {
		return "", nil, p.errorf(UnterminatedRelationSpec, part, "incomplete relation spec")
	}
	end := open + len(body) + 2
	if end < len(part) {
		return "", nil, p.errorf(UnexpectedText, part[end:], "unexpected text after relation spec")
	}

	rel, err := p.parseRelSpec(part[open:end])
	if err != nil {
		return "", nil, err
	}
	return part[:open], rel, nil
}

// parseRelSpec decodes "{<digit><combo><structure>}".
func (p *parser) parseRelSpec(raw string) (*relSpec, error) {
	body := raw[1 : len(raw)-1]
	if len(body) != 3 {
		return nil, p.errorf(MalformedRelationSpec, raw, "relation spec must be <digit><X|I><C|D>")
	}
	if body[0] < '1' || body[0] > '9' {
		return nil, p.errorf(MalformedRelationSpec, raw, "multiplicity must be a digit from 1 to 9")
	}
	combo, ok := spec.ParseCombo(body[1])
	if !ok {
		return nil, p.errorf(MalformedRelationSpec, raw, "not a valid combinatorial spec: %q", body[1])
	}
	structure, ok := spec.ParseStructure(body[2])
	if !ok {
		return nil, p.errorf(MalformedRelationSpec, raw, "not a valid structure spec: %q", body[2])
	}
	return &relSpec{
		raw:          raw,
		multiplicity: int(body[0] - '0'),
		combo:        combo,
		structure:    structure,
	}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
