package uslparser

import "fmt"

// Kind classifies a parse failure. Kind implements error so callers can
// test for a class of failure with errors.Is(err, uslparser.DanglingRelation).
type Kind int

const (
	BlankName                   Kind = iota + 1 // node spec resolves to an empty name
	InvalidName                                 // name contains a reserved character
	DanglingRelation                            // '->' with nothing before or after it
	MalformedRelationSpec                       // relation spec body is not <digit><X|I><C|D>
	UnterminatedRelationSpec                    // '{' with no closing '}'
	UnterminatedBranch                          // '(' with no matching ')'
	ExpectedBranch                              // divergent relation not followed by '('
	BranchArity                                 // branch count differs from multiplicity
	UnexpectedText                              // text after a closing '}' or ')'
	RelationSpecWithoutRelation                 // relation spec is the last token
)

var kindNames = map[Kind]string{
	BlankName:                   "blank name",
	InvalidName:                 "invalid name",
	DanglingRelation:            "dangling relation",
	MalformedRelationSpec:       "malformed relation spec",
	UnterminatedRelationSpec:    "unterminated relation spec",
	UnterminatedBranch:          "unterminated branch",
	ExpectedBranch:              "expected branch",
	BranchArity:                 "branch arity mismatch",
	UnexpectedText:              "unexpected text",
	RelationSpecWithoutRelation: "relation spec without relation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Error() string { return k.String() }

// ParseError is returned for every malformed USL input. Fragment is the
// offending piece of (whitespace-stripped) text and Input is the full text
// as given to Parse.
type ParseError struct {
	Kind     Kind
	Message  string
	Fragment string
	Input    string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	return fmt.Sprintf("%s: %q, in: %q", msg, e.Fragment, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Kind }
