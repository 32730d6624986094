/*
File    : koi/parser/parser_precedence.go

Binding-power table for expression operators (spec.md §4.2) and the
Pratt driver loop. Higher binds tighter; the (lhs, rhs) pair for a given
operator encodes associativity exactly as spec.md tabulates it.
*/
package parser

import "github.com/koi-lang/koi/lexer"

type bp struct{ lhs, rhs int }

var infixBP = map[lexer.TokenType]bp{
	lexer.ASSIGN:    {2, 1},
	lexer.PLUSEQ:    {2, 1},
	lexer.MINUSEQ:   {2, 1},
	lexer.STAREQ:    {2, 1},
	lexer.SLASHEQ:   {2, 1},
	lexer.PERCENTEQ: {2, 1},
	lexer.CARETEQ:   {2, 1},

	lexer.OR: {3, 4},

	lexer.AND: {5, 6},

	lexer.EQ: {7, 8},
	lexer.NE: {7, 8},

	lexer.GT: {9, 10},
	lexer.GE: {9, 10},
	lexer.LT: {9, 10},
	lexer.LE: {9, 10},

	lexer.PLUS:  {11, 12},
	lexer.MINUS: {11, 12},

	lexer.STAR:    {13, 14},
	lexer.SLASH:   {13, 14},
	lexer.PERCENT: {13, 14},

	lexer.CARET: {16, 15},
}

const prefixRBP = 17
const postfixLBP = 19

// isCompoundAssign reports whether tt is one of the `x += e` family.
func isCompoundAssign(tt lexer.TokenType) (lexer.TokenType, bool) {
	switch tt {
	case lexer.PLUSEQ:
		return lexer.PLUS, true
	case lexer.MINUSEQ:
		return lexer.MINUS, true
	case lexer.STAREQ:
		return lexer.STAR, true
	case lexer.SLASHEQ:
		return lexer.SLASH, true
	case lexer.PERCENTEQ:
		return lexer.PERCENT, true
	case lexer.CARETEQ:
		return lexer.CARET, true
	}
	return "", false
}

// parseExpr is the Pratt driver: parse an atom, then repeatedly absorb
// infix/postfix operators whose left binding power exceeds minBP.
func (p *Parser) parseExpr(minBP int) Expr {
	left := p.parseAtom()

	for {
		t := p.peek()

		if t.Type == lexer.DOTDOT {
			if 0 < minBP {
				break
			}
			p.next()
			inclusive := p.match(lexer.ASSIGN)
			right := p.parseExpr(0)
			left = &RangeExpr{Left: left, Right: right, Inclusive: inclusive}
			continue
		}

		if t.Type == lexer.LPAREN {
			if postfixLBP < minBP {
				break
			}
			p.next()
			args := p.parseArgList()
			left = &CallExpr{Callee: left, Args: args}
			continue
		}
		if t.Type == lexer.LBRACKET {
			if postfixLBP < minBP {
				break
			}
			p.next()
			idx := p.parseExpr(0)
			p.expect(lexer.RBRACKET, "to close index expression")
			left = p.finishFieldAccess(left, idx)
			continue
		}
		if t.Type == lexer.DOT {
			if postfixLBP < minBP {
				break
			}
			p.next()
			name := p.expect(lexer.IDENT, "after '.'")
			idx := StringLit{Value: name.Lexeme}
			left = p.finishFieldAccess(left, idx)
			continue
		}

		if target, ok := isCompoundAssign(t.Type); ok {
			b := infixBP[t.Type]
			if b.lhs < minBP {
				break
			}
			p.next()
			rhs := p.parseExpr(b.rhs)
			left = p.desugarCompoundAssign(left, target, rhs)
			continue
		}

		if t.Type == lexer.ASSIGN {
			b := infixBP[t.Type]
			if b.lhs < minBP {
				break
			}
			p.next()
			rhs := p.parseExpr(b.rhs)
			left = p.finishAssign(left, rhs)
			continue
		}

		if t.Type == lexer.GE {
			if infixBP[t.Type].lhs < minBP {
				break
			}
			p.next()
			rhs := p.parseExpr(infixBP[t.Type].rhs)
			left = &BinaryExpr{Left: &BinaryExpr{Left: left, Op: lexer.GT, Right: rhs}, Op: lexer.OR,
				Right: &BinaryExpr{Left: left, Op: lexer.EQ, Right: rhs}}
			continue
		}
		if t.Type == lexer.LE {
			if infixBP[t.Type].lhs < minBP {
				break
			}
			p.next()
			rhs := p.parseExpr(infixBP[t.Type].rhs)
			left = &BinaryExpr{Left: &BinaryExpr{Left: left, Op: lexer.LT, Right: rhs}, Op: lexer.OR,
				Right: &BinaryExpr{Left: left, Op: lexer.EQ, Right: rhs}}
			continue
		}
		if t.Type == lexer.NE {
			if infixBP[t.Type].lhs < minBP {
				break
			}
			p.next()
			rhs := p.parseExpr(infixBP[t.Type].rhs)
			left = &UnaryExpr{Op: lexer.BANG, Operand: &BinaryExpr{Left: left, Op: lexer.EQ, Right: rhs}}
			continue
		}

		b, ok := infixBP[t.Type]
		if !ok || b.lhs < minBP {
			break
		}
		p.next()
		rhs := p.parseExpr(b.rhs)
		left = &BinaryExpr{Left: left, Op: t.Type, Right: rhs}
	}

	return left
}

// finishFieldAccess builds a GetFieldExpr, upgrading to a SetFieldExpr
// if the caller immediately sees `=` (handled by the caller reusing the
// returned node as an assignment target instead).
func (p *Parser) finishFieldAccess(base, index Expr) Expr {
	return &GetFieldExpr{Base: base, Index: index}
}

// finishAssign validates the assignment target (spec.md §4.2: must be a
// Get or GetField) and builds the matching Set/SetField node.
func (p *Parser) finishAssign(target, value Expr) Expr {
	switch t := target.(type) {
	case *GetExpr:
		return &SetExpr{Name: t.Name, Value: value}
	case *GetFieldExpr:
		return &SetFieldExpr{Base: t.Base, Index: t.Index, Value: value}
	default:
		p.errorf("bad assignment target")
		return value
	}
}

// desugarCompoundAssign rewrites `x += e` as `x = x + e` (spec.md §4.2).
func (p *Parser) desugarCompoundAssign(target Expr, op lexer.TokenType, rhs Expr) Expr {
	combined := &BinaryExpr{Left: target, Op: op, Right: rhs}
	return p.finishAssign(target, combined)
}

func (p *Parser) parseArgList() []Expr {
	var args []Expr
	savedMultiline := p.multiline
	p.multiline = true
	defer func() { p.multiline = savedMultiline }()

	if p.check(lexer.RPAREN) {
		p.next()
		return args
	}
	for {
		args = append(args, p.parseExpr(0))
		if p.match(lexer.COMMA) {
			continue
		}
		break
	}
	p.expect(lexer.RPAREN, "to close argument list")
	return args
}
