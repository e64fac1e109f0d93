package dotparser

import "fmt"

// ParseError is the base error type for DOT read errors. Value conversion
// failures set Cause.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("dot %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return "dot: " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError is an unterminated string or comment, or a stray character.
type LexError struct{ ParseError }

// SyntaxError is a token the grammar does not allow at its position.
type SyntaxError struct {
	ParseError
	Expected string
	Got      Token
}

func newSyntaxError(expected string, got Token) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{
			Message: fmt.Sprintf("expected %s, got %s (%q)", expected, got.Kind, got.Literal),
			Pos:     got.Pos,
		},
		Expected: expected,
		Got:      got,
	}
}
