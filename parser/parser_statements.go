/*
File    : koi/parser/parser_statements.go

Statement dispatch, including the per-line expression-vs-command
disambiguation described in spec.md §4.2: a line that looks like
`identifier(.identifier)*  ( = += -= *= /= ^= %= ( [ )` is an
expression statement; anything else starting a new line (or any line
starting with `$`) is a command statement.
*/
package parser

import "github.com/koi-lang/koi/lexer"

func (p *Parser) parseStmt() Stmt {
	p.skip()
	t := p.peek()

	switch t.Type {
	case lexer.KW_IMPORT:
		return p.parseImport()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.KW_LET, lexer.KW_EXP:
		return p.parseLet()
	case lexer.KW_IF:
		return p.parseIf()
	case lexer.KW_FOR:
		return p.parseFor()
	case lexer.KW_WHILE:
		return p.parseWhile()
	case lexer.KW_FN:
		return p.parseFuncDecl()
	case lexer.KW_RETURN:
		p.next()
		if p.atStmtEnd() {
			return &ReturnStmt{}
		}
		return &ReturnStmt{Value: p.parseExpr(0)}
	case lexer.KW_CONTINUE:
		p.next()
		return &ContinueStmt{}
	case lexer.KW_BREAK:
		p.next()
		return &BreakStmt{}
	case lexer.DOLLAR:
		p.next() // the leading `$` only forces command-statement parsing, it is not part of the command itself
		return p.parseCmdStmt()
	}

	if p.atLineStart() && p.looksLikeExprStmt() {
		e := p.parseExpr(0)
		return &ExprStmt{Expr: e}
	}
	if p.atLineStart() {
		return p.parseCmdStmt()
	}

	// Not at a fresh line (e.g. continuing inside a block that already
	// consumed a separator on the same physical line): default to
	// expression-statement parsing, the common case for nested bodies.
	e := p.parseExpr(0)
	return &ExprStmt{Expr: e}
}

func (p *Parser) atStmtEnd() bool {
	t := p.peek()
	return t.Type == lexer.NEWLINE || t.Type == lexer.SEMI || t.Type == lexer.RBRACE || t.Type == lexer.EOF
}

// looksLikeExprStmt implements spec.md §4.2's lookahead predicate using
// the lexer's record/replay facility: record tokens to the end of the
// line (dropping SPACE), then check whether the line begins with an
// identifier, an optional `.identifier` chain, and one of
// ( [ = += -= *= /= ^= %=.
func (p *Parser) looksLikeExprStmt() bool {
	p.lex.StartRecording()
	var toks []lexer.Token
	for {
		t := p.lex.Next()
		if t.Type == lexer.NEWLINE || t.Type == lexer.EOF {
			break
		}
		if t.Type == lexer.SPACE {
			continue
		}
		toks = append(toks, t)
	}
	p.lex.StopRecording(true)

	if len(toks) == 0 || toks[0].Type != lexer.IDENT {
		return false
	}
	i := 1
	for i+1 < len(toks) && toks[i].Type == lexer.DOT && toks[i+1].Type == lexer.IDENT {
		i += 2
	}
	if i >= len(toks) {
		return false
	}
	switch toks[i].Type {
	case lexer.LPAREN, lexer.LBRACKET, lexer.ASSIGN,
		lexer.PLUSEQ, lexer.MINUSEQ, lexer.STAREQ, lexer.SLASHEQ, lexer.CARETEQ, lexer.PERCENTEQ:
		return true
	}
	return false
}

func (p *Parser) parseBlock() Stmt {
	p.expect(lexer.LBRACE, "to start block")
	savedMultiline := p.multiline
	p.multiline = true

	var stmts []Stmt
	for {
		p.skipBlankInBlock()
		if p.check(lexer.RBRACE) || p.check(lexer.EOF) {
			break
		}
		p.multiline = false
		stmts = append(stmts, p.parseStmt())
		p.multiline = true
	}
	p.multiline = savedMultiline
	p.expect(lexer.RBRACE, "to close block")
	return &BlockStmt{Stmts: stmts}
}

func (p *Parser) skipBlankInBlock() {
	for {
		t := p.peek()
		if t.Type == lexer.NEWLINE || t.Type == lexer.SEMI {
			p.lex.Next()
			continue
		}
		break
	}
}

func (p *Parser) parseImport() Stmt {
	p.expect(lexer.KW_IMPORT, "")
	pathTok := p.expect(lexer.STRING, "import path")
	if p.match(lexer.KW_AS) {
		alias := p.expect(lexer.IDENT, "import alias")
		return &NamedImportStmt{Path: pathTok.Str, Alias: alias.Lexeme}
	}
	return &ImportStmt{Path: pathTok.Str}
}

func (p *Parser) parseLet() Stmt {
	isExported := p.match(lexer.KW_EXP)
	if isExported {
		p.expect(lexer.KW_LET, "after 'exp'")
	} else {
		p.expect(lexer.KW_LET, "")
	}
	name := p.expect(lexer.IDENT, "variable name")
	var init Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpr(0)
	}
	return &LetStmt{IsExported: isExported, Name: name.Lexeme, Init: init}
}

func (p *Parser) parseIf() Stmt {
	p.expect(lexer.KW_IF, "")
	savedMultiline := p.multiline
	p.multiline = true
	cond := p.parseExpr(0)
	p.multiline = savedMultiline
	then := p.parseBlock()
	var els Stmt
	p.skip()
	if p.match(lexer.KW_ELSE) {
		if p.check(lexer.KW_IF) {
			els = p.parseIf()
		} else {
			els = p.parseBlock()
		}
	}
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseFor() Stmt {
	p.expect(lexer.KW_FOR, "")
	lvar := p.expect(lexer.IDENT, "loop variable").Lexeme
	rvar := ""
	hasR := false
	if p.match(lexer.COMMA) {
		rvar = p.expect(lexer.IDENT, "second loop variable").Lexeme
		hasR = true
	}
	p.expect(lexer.KW_IN, "in for loop")
	savedMultiline := p.multiline
	p.multiline = true
	iter := p.parseExpr(0)
	p.multiline = savedMultiline
	body := p.parseBlock()
	return &ForStmt{LVar: lvar, RVar: rvar, HasRVar: hasR, Iterated: iter, Body: body}
}

func (p *Parser) parseWhile() Stmt {
	p.expect(lexer.KW_WHILE, "")
	savedMultiline := p.multiline
	p.multiline = true
	cond := p.parseExpr(0)
	p.multiline = savedMultiline
	body := p.parseBlock()
	return &WhileStmt{Cond: cond, Body: body}
}

func (p *Parser) parseFuncDecl() Stmt {
	p.expect(lexer.KW_FN, "")
	name := p.expect(lexer.IDENT, "function name").Lexeme
	params := p.parseParamList()
	hasRet, ret := p.parseOptionalReturnType()
	body := p.parseBlock()
	return &FuncDeclStmt{Name: name, Params: params, Body: body, HasReturnType: hasRet, ReturnType: ret}
}
