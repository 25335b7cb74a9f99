package golisp

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

// Parse builds exactly one expression from toks. Tokens left over after a
// complete form are an error; a line is one form.
func Parse(toks []Token) (*Expr, error) {
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, ErrTrailingInput
	}
	return e, nil
}

// ParseAll builds successive complete expressions until the tokens run out.
// Batch inputs hold many top-level forms.
func ParseAll(toks []Token) ([]*Expr, error) {
	if len(toks) == 0 {
		return nil, ErrEmptyInput
	}
	p := &parser{toks: toks}
	var exprs []*Expr
	for p.pos < len(p.toks) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (p *parser) parseExpr() (*Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, ErrUnbalancedParens
	}
	switch tok.Type {
	case TokenLParen:
		return p.parseList()
	case TokenRParen:
		return nil, ErrUnbalancedParens
	case TokenNumber:
		return NewNumber(tok.Num), nil
	default:
		return NewSymbol(tok.Text), nil
	}
}

func (p *parser) parseList() (*Expr, error) {
	var elems []*Expr
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnbalancedParens
		}
		if tok.Type == TokenRParen {
			p.pos++
			return NewList(elems...), nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

// Balanced reports whether every open parenthesis in toks has a matching
// close. The repl uses it to keep reading continuation lines before parsing.
func Balanced(toks []Token) bool {
	depth := 0
	for _, tok := range toks {
		switch tok.Type {
		case TokenLParen:
			depth++
		case TokenRParen:
			if depth > 0 {
				depth--
			}
		}
	}
	return depth == 0
}
