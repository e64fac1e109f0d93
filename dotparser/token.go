package dotparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // [A-Za-z_][A-Za-z0-9_]*
	TokenString               // "..." with escape processing
	TokenInteger              // -?[0-9]+
	TokenFloat                // -?[0-9]*.[0-9]+
	TokenArrow                // ->
	TokenLBrace               // {
	TokenRBrace               // }
	TokenLBracket             // [
	TokenRBracket             // ]
	TokenEquals               // =
	TokenComma                // ,
	TokenSemicolon            // ;

	// Keywords
	TokenDigraph
	TokenGraph
	TokenNode
	TokenEdge
	TokenTrue
	TokenFalse
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenInteger:    "integer",
	TokenFloat:      "float",
	TokenArrow:      "'->'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenEquals:     "'='",
	TokenComma:      "','",
	TokenSemicolon:  "';'",
	TokenDigraph:    "'digraph'",
	TokenGraph:      "'graph'",
	TokenNode:       "'node'",
	TokenEdge:       "'edge'",
	TokenTrue:       "'true'",
	TokenFalse:      "'false'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // decoded for strings, raw for everything else
	Pos     Position
}

// isID reports whether the token can name a node: identifiers, quoted
// strings and integers (materialized graphs use numeric or UUID ids).
func (t Token) isID() bool {
	switch t.Kind {
	case TokenIdentifier, TokenString, TokenInteger:
		return true
	}
	return false
}

var keywords = map[string]TokenKind{
	"digraph": TokenDigraph,
	"graph":   TokenGraph,
	"node":    TokenNode,
	"edge":    TokenEdge,
	"true":    TokenTrue,
	"false":   TokenFalse,
}
