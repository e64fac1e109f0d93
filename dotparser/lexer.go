package dotparser

import "strings"

// Lexer tokenizes DOT source into a stream of tokens, skipping whitespace,
// // and # line comments, and /* */ block comments.
type Lexer struct {
	src    []byte
	pos    int // byte offset
	line   int // 1-based
	col    int // 1-based
	peeked *Token
}

// NewLexer creates a Lexer for src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) at(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) lexError(msg string, pos Position) *LexError {
	return &LexError{ParseError{Message: msg, Pos: pos}}
}

func (l *Lexer) skipIgnored() error {
	for !l.atEnd() {
		ch := l.at(0)
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#', ch == '/' && l.at(1) == '/':
			for !l.atEnd() && l.at(0) != '\n' {
				l.advance()
			}
		case ch == '/' && l.at(1) == '*':
			start := l.position()
			l.advance()
			l.advance()
			for {
				if l.atEnd() {
					return l.lexError("unterminated block comment", start)
				}
				if l.at(0) == '*' && l.at(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

var punctuation = map[byte]TokenKind{
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	'=': TokenEquals,
	',': TokenComma,
	';': TokenSemicolon,
}

func (l *Lexer) scan() (Token, error) {
	if err := l.skipIgnored(); err != nil {
		return Token{}, err
	}

	pos := l.position()
	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	ch := l.at(0)
	if kind, ok := punctuation[ch]; ok {
		l.advance()
		return Token{Kind: kind, Literal: string(ch), Pos: pos}, nil
	}

	switch {
	case ch == '"':
		return l.scanString()
	case ch == '-' && l.at(1) == '>':
		l.advance()
		l.advance()
		return Token{Kind: TokenArrow, Literal: "->", Pos: pos}, nil
	case ch == '-' && (isDigit(l.at(1)) || l.at(1) == '.' && isDigit(l.at(2))),
		isDigit(ch), ch == '.' && isDigit(l.at(1)):
		return l.scanNumber(), nil
	case isIdentStart(ch):
		return l.scanIdentifier(), nil
	}

	l.advance()
	return Token{}, l.lexError("unexpected character "+quoteByte(ch), pos)
}

func (l *Lexer) scanString() (Token, error) {
	pos := l.position()
	l.advance() // opening quote

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, l.lexError("unterminated string", pos)
		}
		ch := l.advance()
		switch ch {
		case '"':
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		case '\\':
			if l.atEnd() {
				return Token{}, l.lexError("unterminated string escape", pos)
			}
			esc := l.advance()
			switch esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			default:
				// DOT keeps unknown escapes (\l, \r, ...) for the renderer.
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
		default:
			sb.WriteByte(ch)
		}
	}
}

func (l *Lexer) scanNumber() Token {
	pos := l.position()
	start := l.pos
	if l.at(0) == '-' {
		l.advance()
	}
	for isDigit(l.at(0)) {
		l.advance()
	}

	kind := TokenInteger
	if l.at(0) == '.' && isDigit(l.at(1)) {
		kind = TokenFloat
		l.advance()
		for isDigit(l.at(0)) {
			l.advance()
		}
	}
	return Token{Kind: kind, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.position()
	start := l.pos
	for isIdentPart(l.at(0)) {
		l.advance()
	}
	literal := string(l.src[start:l.pos])
	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}
	}
	return Token{Kind: TokenIdentifier, Literal: literal, Pos: pos}
}

func quoteByte(ch byte) string {
	return "'" + string(rune(ch)) + "'"
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
