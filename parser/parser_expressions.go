/*
File    : koi/parser/parser_expressions.go

Expression atoms: literals, identifiers, collection literals, prefix
operators, parenthesized expressions, lambdas, and embedded commands.
*/
package parser

import "github.com/koi-lang/koi/lexer"

// parseAtom parses one expression atom, dispatching on the first token
// per spec.md §4.2.
func (p *Parser) parseAtom() Expr {
	t := p.peek()

	switch t.Type {
	case lexer.NUMBER:
		p.next()
		return NumLit{Value: t.Num}
	case lexer.KW_TRUE:
		p.next()
		return BoolLit{Value: true}
	case lexer.KW_FALSE:
		p.next()
		return BoolLit{Value: false}
	case lexer.KW_NIL:
		p.next()
		return NilLit{}
	case lexer.STRING:
		return p.parseStringAtom()
	case lexer.IDENT:
		p.next()
		return &GetExpr{Name: t.Lexeme}
	case lexer.LBRACKET:
		return p.parseVecLit()
	case lexer.LBRACE:
		return p.parseDictLit()
	case lexer.KW_FN:
		return p.parseLambda()
	case lexer.LPAREN:
		return p.parseParenOrGroup()
	case lexer.DOLLAR_PAREN:
		return p.parseEmbeddedCmd()
	case lexer.BANG, lexer.PLUS, lexer.MINUS:
		p.next()
		operand := p.parseExpr(prefixRBP)
		return &UnaryExpr{Op: t.Type, Operand: operand}
	default:
		p.errorf("unexpected token %s %q in expression", t.Type, t.Lexeme)
		p.next()
		return NilLit{}
	}
}

// parseStringAtom consumes one STRING token. If it DoesInterp, it
// alternates parsing an expression then consuming the next STRING
// token until a non-interpolating STRING arrives (spec.md §4.2), and
// returns an InterpExpr with exactly n+1 string segments and n
// expressions. Otherwise it returns a plain StringLit.
func (p *Parser) parseStringAtom() Expr {
	first := p.next() // STRING token
	if !first.DoesInterp {
		return StringLit{Value: first.Str}
	}

	strs := []string{first.Str}
	var exprs []Expr
	for {
		savedMultiline := p.multiline
		p.multiline = true
		e := p.parseExpr(0)
		p.multiline = savedMultiline
		exprs = append(exprs, e)

		seg := p.expect(lexer.STRING, "continuing string interpolation")
		strs = append(strs, seg.Str)
		if !seg.DoesInterp {
			break
		}
	}
	return &InterpExpr{Strings: strs, Exprs: exprs}
}

func (p *Parser) parseVecLit() Expr {
	p.expect(lexer.LBRACKET, "to start vector literal")
	savedMultiline := p.multiline
	p.multiline = true
	defer func() { p.multiline = savedMultiline }()

	var elems []Expr
	if !p.check(lexer.RBRACKET) {
		for {
			elems = append(elems, p.parseExpr(0))
			if p.match(lexer.COMMA) {
				if p.check(lexer.RBRACKET) {
					break
				}
				continue
			}
			break
		}
	}
	p.expect(lexer.RBRACKET, "to close vector literal")
	return &VecLit{Elements: elems}
}

func (p *Parser) parseDictLit() Expr {
	p.expect(lexer.LBRACE, "to start dict literal")
	savedMultiline := p.multiline
	p.multiline = true
	defer func() { p.multiline = savedMultiline }()

	d := &DictLit{}
	if !p.check(lexer.RBRACE) {
		for {
			keyTok := p.peek()
			var key string
			switch keyTok.Type {
			case lexer.IDENT:
				p.next()
				key = keyTok.Lexeme
			case lexer.STRING:
				p.next()
				key = keyTok.Str
			default:
				p.errorf("expected dict key, got %s %q", keyTok.Type, keyTok.Lexeme)
				p.next()
			}
			p.expect(lexer.COLON, "after dict key")
			val := p.parseExpr(0)
			d.Keys = append(d.Keys, key)
			d.Values = append(d.Values, val)
			if p.match(lexer.COMMA) {
				if p.check(lexer.RBRACE) {
					break
				}
				continue
			}
			break
		}
	}
	p.expect(lexer.RBRACE, "to close dict literal")
	return d
}

func (p *Parser) parseParenOrGroup() Expr {
	p.expect(lexer.LPAREN, "")
	savedMultiline := p.multiline
	p.multiline = true
	e := p.parseExpr(0)
	p.multiline = savedMultiline
	p.expect(lexer.RPAREN, "to close parenthesized expression")
	return e
}

func (p *Parser) parseEmbeddedCmd() Expr {
	p.expect(lexer.DOLLAR_PAREN, "")
	savedMultiline := p.multiline
	p.multiline = false
	cmd := p.parseCmd(0)
	p.multiline = savedMultiline
	p.expect(lexer.RPAREN, "to close embedded command")
	return &CmdExpr{Cmd: cmd}
}

func (p *Parser) parseLambda() Expr {
	p.expect(lexer.KW_FN, "")
	params := p.parseParamList()
	hasRet, ret := p.parseOptionalReturnType()
	body := p.parseBlock()
	return &LambdaExpr{Params: params, Body: body, HasReturnType: hasRet, ReturnType: ret}
}

// parseParamList parses `(p1, p2: T1 | T2, p3)`.
func (p *Parser) parseParamList() []Param {
	p.expect(lexer.LPAREN, "to start parameter list")
	savedMultiline := p.multiline
	p.multiline = true
	defer func() { p.multiline = savedMultiline }()

	var params []Param
	if !p.check(lexer.RPAREN) {
		for {
			nameTok := p.expect(lexer.IDENT, "parameter name")
			param := Param{Name: nameTok.Lexeme}
			if p.match(lexer.COLON) {
				param.HasTypeHint = true
				param.TypeHints = append(param.TypeHints, p.expect(lexer.IDENT, "type hint").Lexeme)
				for p.match(lexer.PIPE) {
					param.TypeHints = append(param.TypeHints, p.expect(lexer.IDENT, "type hint").Lexeme)
				}
			}
			params = append(params, param)
			if p.match(lexer.COMMA) {
				continue
			}
			break
		}
	}
	p.expect(lexer.RPAREN, "to close parameter list")
	return params
}

func (p *Parser) parseOptionalReturnType() (bool, string) {
	if p.match(lexer.ARROW) {
		return true, p.expect(lexer.IDENT, "return type").Lexeme
	}
	return false, ""
}
