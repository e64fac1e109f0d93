package dotparser

import (
	"fmt"
	"strconv"
)

// ParseValue converts a token in value position into a typed Value. Bare
// identifiers are unquoted strings (color=red, rankdir=BT).
func ParseValue(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenString, TokenIdentifier:
		return Value{Kind: ValueString, Str: tok.Literal, Raw: tok.Literal}, nil

	case TokenInteger:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return Value{}, valueError(tok, "integer", err)
		}
		return Value{Kind: ValueInt, Int: n, Raw: tok.Literal}, nil

	case TokenFloat:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return Value{}, valueError(tok, "float", err)
		}
		return Value{Kind: ValueFloat, Float: f, Raw: tok.Literal}, nil

	case TokenTrue, TokenFalse:
		return Value{Kind: ValueBool, Bool: tok.Kind == TokenTrue, Raw: tok.Literal}, nil

	default:
		return Value{}, &ParseError{
			Message: fmt.Sprintf("unexpected %s in value position", tok.Kind),
			Pos:     tok.Pos,
		}
	}
}

func valueError(tok Token, what string, err error) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("invalid %s %q", what, tok.Literal),
		Pos:     tok.Pos,
		Cause:   err,
	}
}
