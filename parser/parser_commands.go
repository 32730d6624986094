/*
File    : koi/parser/parser_commands.go

Command grammar (spec.md §4.2): atoms made of whitespace-separated
words, combined with `;`, `&&`, `||`, the pipe family, and the redirect
family, via the same Pratt climbing style as expressions but over a
separate binding-power table.
*/
package parser

import "github.com/koi-lang/koi/lexer"

type cmdOpInfo struct {
	bp bp
	op CmdOp
}

// cmdInfixBP is spec.md §4.2's command operator table: `;` loosest,
// redirects tightest.
var cmdInfixBP = map[lexer.TokenType]cmdOpInfo{
	lexer.SEMI: {bp{1, 2}, OpSeq},
	lexer.OR:   {bp{3, 4}, OpOr},
	lexer.AND:  {bp{5, 6}, OpAnd},

	lexer.PIPE:     {bp{7, 8}, OpOutPipe},
	lexer.ERR_PIPE: {bp{7, 8}, OpErrPipe},
	lexer.ALL_PIPE: {bp{7, 8}, OpAllPipe},

	lexer.GT:         {bp{9, 10}, OpOutWrite},
	lexer.OUT_APPEND: {bp{9, 10}, OpOutAppend},
	lexer.ERR_WRITE:  {bp{9, 10}, OpErrWrite},
	lexer.ERR_APPEND: {bp{9, 10}, OpErrAppend},
	lexer.ALL_WRITE:  {bp{9, 10}, OpAllWrite},
	lexer.ALL_APPEND: {bp{9, 10}, OpAllAppend},
	lexer.LT:         {bp{9, 10}, OpRead},
}

func isRedirectOp(op CmdOp) bool {
	switch op {
	case OpOutWrite, OpErrWrite, OpAllWrite, OpOutAppend, OpErrAppend, OpAllAppend, OpRead:
		return true
	}
	return false
}

func (p *Parser) isCmdTerminator(tt lexer.TokenType) bool {
	if _, ok := cmdInfixBP[tt]; ok {
		return true
	}
	switch tt {
	case lexer.RPAREN, lexer.RBRACE, lexer.NEWLINE, lexer.EOF:
		return true
	}
	return false
}

// parseCmd is the command-side Pratt driver, mirroring parseExpr but
// over cmdInfixBP.
func (p *Parser) parseCmd(minBP int) Cmd {
	left := p.parseCmdPrimary()

	for {
		for p.lex.Peek().Type == lexer.SPACE {
			p.lex.Next()
		}
		t := p.lex.Peek()
		info, ok := cmdInfixBP[t.Type]
		if !ok || info.bp.lhs < minBP {
			break
		}
		p.lex.Next()
		for p.lex.Peek().Type == lexer.SPACE {
			p.lex.Next()
		}

		if isRedirectOp(info.op) {
			target := p.parseRedirectTarget()
			left = &CmdOpNode{Left: left, Op: info.op, Right: target}
			continue
		}
		right := p.parseCmd(info.bp.rhs)
		left = &CmdOpNode{Left: left, Op: info.op, Right: right}
	}

	return left
}

// parseCmdPrimary parses one parenthesized group or bare atom.
func (p *Parser) parseCmdPrimary() Cmd {
	for p.lex.Peek().Type == lexer.SPACE {
		p.lex.Next()
	}
	if p.lex.Peek().Type == lexer.LPAREN {
		p.lex.Next()
		saved := p.multiline
		p.multiline = false
		inner := p.parseCmd(0)
		p.multiline = saved
		for p.lex.Peek().Type == lexer.SPACE {
			p.lex.Next()
		}
		p.expect(lexer.RPAREN, "to close grouped command")
		return inner
	}
	return p.parseCmdAtom()
}

// parseCmdAtom gathers whitespace-separated words until a terminating
// operator, newline, closing paren/brace, or EOF.
func (p *Parser) parseCmdAtom() Cmd {
	var words []Word
	for {
		t := p.lex.Peek()
		if t.Type == lexer.SPACE {
			p.lex.Next()
			continue
		}
		if p.isCmdTerminator(t.Type) {
			break
		}
		words = append(words, p.parseCmdWord())
	}
	if len(words) == 0 {
		p.errorf("expected a command, found %s %q", p.lex.Peek().Type, p.lex.Peek().Lexeme)
	}
	return &Atom{Segments: words}
}

// parseCmdWord accumulates adjacent (no intervening SPACE) pieces into
// one argv word: literal symbol runs become StringLit pieces, STRING
// tokens become (possibly interpolated) string pieces, and `{expr}`
// becomes a general embedded expression piece.
func (p *Parser) parseCmdWord() Word {
	var pieces []Expr
	for {
		t := p.lex.Peek()
		if t.Type == lexer.SPACE || p.isCmdTerminator(t.Type) {
			break
		}
		switch t.Type {
		case lexer.STRING:
			pieces = append(pieces, p.parseStringAtom())
		case lexer.LBRACE:
			p.lex.Next()
			saved := p.multiline
			p.multiline = true
			e := p.parseExpr(0)
			p.multiline = saved
			p.expect(lexer.RBRACE, "to close embedded expression in command word")
			pieces = append(pieces, e)
		case lexer.DOLLAR_PAREN:
			pieces = append(pieces, p.parseEmbeddedCmd())
		default:
			p.lex.Next()
			pieces = append(pieces, StringLit{Value: t.Lexeme})
		}
	}
	return Word{Pieces: pieces}
}

// parseRedirectTarget parses the single word following a redirect
// operator and wraps it as a one-segment Atom so it fits the Cmd
// interface uniformly.
func (p *Parser) parseRedirectTarget() Cmd {
	for p.lex.Peek().Type == lexer.SPACE {
		p.lex.Next()
	}
	word := p.parseCmdWord()
	return &Atom{Segments: []Word{word}}
}

func (p *Parser) parseCmdStmt() Stmt {
	cmd := p.parseCmd(0)
	return &CmdStmt{Cmd: cmd}
}
