package routemap

import "strconv"

// parser builds a Program from the token stream. It is a plain recursive
// descent parser over the routing subset: expression statements, call and
// member chains, function literals, object literals, and scalar literals.
type parser struct {
	name  string
	toks  []Token
	pos   int
	depth int
}

// Parse scans and parses routing DSL source. The name is used in error
// messages and diagnostics, not to read anything from disk.
func Parse(src []byte, name string) (*Program, error) {
	return ParseString(string(src), name)
}

// ParseString is Parse for sources already held as a string.
func ParseString(src, name string) (*Program, error) {
	if name == "" {
		name = "source"
	}

	lx := newLexer(src, name)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			break
		}
	}

	p := &parser{name: name, toks: toks}
	return p.parseProgram()
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tt TokenType) (Token, error) {
	tok := p.cur()
	if tok.Type != tt {
		return tok, NewParseError(p.name, tok.Pos, "expected %s, found %s", tt, tok)
	}
	return p.next(), nil
}

func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{Name: p.name}
	for p.cur().Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *parser) parseStatement() (Statement, error) {
	if p.cur().Type == TokenLBrace {
		return p.parseBlock()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == TokenSemicolon {
		p.next()
	}
	return &ExpressionStatement{Expression: expr}, nil
}

func (p *parser) parseBlock() (*BlockStatement, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxWalkDepth {
		return nil, NewParseError(p.name, p.cur().Pos, "block nested too deeply")
	}

	lbrace, err := p.expect(TokenLBrace)
	if err != nil {
		return nil, err
	}

	block := &BlockStatement{Token: lbrace}
	for p.cur().Type != TokenRBrace {
		if p.cur().Type == TokenEOF {
			return nil, NewParseError(p.name, lbrace.Pos, "unterminated block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.next()
	return block, nil
}

// parseExpression parses a primary expression followed by any chain of
// member accesses and calls, so App.Router.map(fn) comes out nested the
// way the source reads.
func (p *parser) parseExpression() (Expression, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxWalkDepth {
		return nil, NewParseError(p.name, p.cur().Pos, "expression nested too deeply")
	}

	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case TokenDot:
			dot := p.next()
			ident, err := p.expect(TokenIdent)
			if err != nil {
				return nil, err
			}
			expr = &MemberExpression{
				Token:    dot,
				Object:   expr,
				Property: &Identifier{Token: ident, Name: ident.Literal},
			}
		case TokenLParen:
			lparen := p.next()
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &CallExpression{Token: lparen, Callee: expr, Arguments: args}
		default:
			return expr, nil
		}
	}
}

func (p *parser) parseArguments() ([]Expression, error) {
	var args []Expression
	for p.cur().Type != TokenRParen {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur().Type == TokenComma {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case TokenIdent:
		p.next()
		return &Identifier{Token: tok, Name: tok.Literal}, nil
	case TokenString:
		p.next()
		return &StringLiteral{Token: tok, Value: tok.Literal}, nil
	case TokenNumber:
		p.next()
		val, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, NewParseError(p.name, tok.Pos, "invalid number literal %q", tok.Literal)
		}
		return &NumberLiteral{Token: tok, Value: val}, nil
	case TokenTrue, TokenFalse:
		p.next()
		return &BooleanLiteral{Token: tok, Value: tok.Type == TokenTrue}, nil
	case TokenNull:
		p.next()
		return &NullLiteral{Token: tok}, nil
	case TokenThis:
		p.next()
		return &ThisExpression{Token: tok}, nil
	case TokenFunction:
		return p.parseFunction()
	case TokenLBrace:
		return p.parseObject()
	case TokenLParen:
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, NewParseError(p.name, tok.Pos, "unexpected token %s", tok)
}

func (p *parser) parseFunction() (Expression, error) {
	kw, err := p.expect(TokenFunction)
	if err != nil {
		return nil, err
	}
	// Named function expressions are accepted, the name is not retained.
	if p.cur().Type == TokenIdent {
		p.next()
	}
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	fn := &FunctionLiteral{Token: kw}
	for p.cur().Type == TokenIdent {
		ident := p.next()
		fn.Parameters = append(fn.Parameters, &Identifier{Token: ident, Name: ident.Literal})
		if p.cur().Type == TokenComma {
			p.next()
		}
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	return fn, nil
}

func (p *parser) parseObject() (Expression, error) {
	lbrace, err := p.expect(TokenLBrace)
	if err != nil {
		return nil, err
	}

	obj := &ObjectLiteral{Token: lbrace}
	for p.cur().Type != TokenRBrace {
		key := p.cur()
		if key.Type != TokenIdent && key.Type != TokenString {
			return nil, NewParseError(p.name, key.Pos, "expected property name, found %s", key)
		}
		p.next()
		if _, err := p.expect(TokenColon); err != nil {
			return nil, err
		}

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, &ObjectProperty{
			Token: key,
			Key:   key.Literal,
			Value: value,
		})

		if p.cur().Type == TokenComma {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return obj, nil
}
