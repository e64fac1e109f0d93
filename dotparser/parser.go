package dotparser

// Parse parses DOT source and returns the Graph.
// Returns a *SyntaxError, *LexError or *ParseError on failure.
func Parse(src []byte) (*Graph, error) {
	p := &parser{
		lex:   NewLexer(src),
		nodes: make(map[string]*Node),
	}
	return p.parseGraph()
}

type parser struct {
	lex          *Lexer
	graph        Graph
	nodeDefaults Attrs
	edgeDefaults Attrs
	nodes        map[string]*Node
}

func (p *parser) peek() (Token, error) { return p.lex.Peek() }

func (p *parser) next() (Token, error) { return p.lex.Next() }

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, newSyntaxError(kind.String(), tok)
	}
	return tok, nil
}

// skip consumes the next token if it has the given kind.
func (p *parser) skip(kind TokenKind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind != kind {
		return false, nil
	}
	_, _ = p.next()
	return true, nil
}

// node returns the node with the given ID, creating it with the current
// node defaults on first reference.
func (p *parser) node(id string, pos Position) *Node {
	if n, ok := p.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Attrs: append(Attrs(nil), p.nodeDefaults...), Pos: pos}
	p.nodes[id] = n
	p.graph.Nodes = append(p.graph.Nodes, n)
	return n
}

func (p *parser) parseGraph() (*Graph, error) {
	if _, err := p.expect(TokenDigraph); err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.isID() {
		_, _ = p.next()
		p.graph.Name = tok.Literal
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	for {
		done, err := p.skip(TokenRBrace)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err := p.parseStatement(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return &p.graph, nil
}

func (p *parser) parseStatement() error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	switch {
	case tok.Kind == TokenSemicolon:
		return nil

	case tok.Kind == TokenGraph || tok.Kind == TokenNode || tok.Kind == TokenEdge:
		attrs, err := p.parseAttrList()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokenGraph:
			p.graph.Attrs = append(p.graph.Attrs, attrs...)
		case TokenNode:
			p.nodeDefaults = append(p.nodeDefaults, attrs...)
		case TokenEdge:
			p.edgeDefaults = append(p.edgeDefaults, attrs...)
		}

	case tok.isID():
		next, err := p.peek()
		if err != nil {
			return err
		}
		switch next.Kind {
		case TokenEquals:
			if err := p.parseGraphAttr(tok); err != nil {
				return err
			}
		case TokenArrow:
			if err := p.parseEdgeChain(tok); err != nil {
				return err
			}
		default:
			n := p.node(tok.Literal, tok.Pos)
			attrs, err := p.parseOptionalAttrList()
			if err != nil {
				return err
			}
			n.Attrs = append(n.Attrs, attrs...)
		}

	default:
		return newSyntaxError("statement", tok)
	}

	_, err = p.skip(TokenSemicolon)
	return err
}

// parseGraphAttr parses "= value" after a top-level key.
func (p *parser) parseGraphAttr(key Token) error {
	_, _ = p.next() // '='
	val, err := p.parseValue()
	if err != nil {
		return err
	}
	p.graph.Attrs = append(p.graph.Attrs, Attr{Key: key.Literal, Value: val, Pos: key.Pos})
	return nil
}

// parseEdgeChain parses ('->' ID)+ attrList? after the first ID, adding
// one edge per consecutive pair.
func (p *parser) parseEdgeChain(first Token) error {
	ids := []Token{first}
	for {
		ok, err := p.skip(TokenArrow)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		tok, err := p.next()
		if err != nil {
			return err
		}
		if !tok.isID() {
			return newSyntaxError("node identifier", tok)
		}
		ids = append(ids, tok)
	}

	attrs, err := p.parseOptionalAttrList()
	if err != nil {
		return err
	}

	for _, id := range ids {
		p.node(id.Literal, id.Pos)
	}
	for i := 0; i < len(ids)-1; i++ {
		p.graph.Edges = append(p.graph.Edges, &Edge{
			From:  ids[i].Literal,
			To:    ids[i+1].Literal,
			Attrs: append(append(Attrs(nil), p.edgeDefaults...), attrs...),
			Pos:   ids[i].Pos,
		})
	}
	return nil
}

func (p *parser) parseOptionalAttrList() (Attrs, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBracket {
		return nil, nil
	}
	return p.parseAttrList()
}

// parseAttrList parses '[' (key '=' value (',' | ';')?)* ']'.
func (p *parser) parseAttrList() (Attrs, error) {
	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	var attrs Attrs
	for {
		done, err := p.skip(TokenRBracket)
		if err != nil {
			return nil, err
		}
		if done {
			return attrs, nil
		}

		key, err := p.next()
		if err != nil {
			return nil, err
		}
		if !key.isID() && key.Kind != TokenGraph && key.Kind != TokenNode && key.Kind != TokenEdge {
			return nil, newSyntaxError("attribute key", key)
		}
		if _, err := p.expect(TokenEquals); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attr{Key: key.Literal, Value: val, Pos: key.Pos})

		if ok, err := p.skip(TokenComma); err != nil {
			return nil, err
		} else if !ok {
			if _, err := p.skip(TokenSemicolon); err != nil {
				return nil, err
			}
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	return ParseValue(tok)
}
