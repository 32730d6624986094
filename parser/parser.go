/*
File    : koi/parser/parser.go

Parser turns a Koi token stream into a Prog. It is a Pratt
(precedence-climbing) parser for expressions and commands alike, with
a `multiline` mode flag: true while inside brackets/braces/parens
(where newlines are just whitespace), false at the top level and while
parsing a command statement (where a newline ends it).
*/
package parser

import (
	"fmt"

	"github.com/koi-lang/koi/lexer"
)

// Parser holds parsing state for one source file/snippet.
type Parser struct {
	lex       *lexer.Peekable
	multiline bool
	errs      []string
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.NewPeekable(src)}
}

// HasErrors reports whether any parse errors were collected.
func (p *Parser) HasErrors() bool { return len(p.errs) > 0 }

// Errors returns the collected parse error messages.
func (p *Parser) Errors() []string { return p.errs }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Sprintf(format, args...))
}

// --- low-level token helpers -------------------------------------------

// skip advances past SPACE tokens, and past NEWLINE tokens too while
// p.multiline is true.
func (p *Parser) skip() {
	for {
		t := p.lex.Peek()
		if t.Type == lexer.SPACE {
			p.lex.Next()
			continue
		}
		if p.multiline && t.Type == lexer.NEWLINE {
			p.lex.Next()
			continue
		}
		break
	}
}

// peek returns the next significant token without consuming it.
func (p *Parser) peek() lexer.Token {
	p.skip()
	return p.lex.Peek()
}

// next consumes and returns the next significant token.
func (p *Parser) next() lexer.Token {
	p.skip()
	return p.lex.Next()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(tt lexer.TokenType, context string) lexer.Token {
	t := p.peek()
	if t.Type != tt {
		p.errorf("expected %s %s, got %s %q", tt, context, t.Type, t.Lexeme)
		return t
	}
	return p.next()
}

// atLineStart reports whether the underlying scanner is still
// positioned at the start of its source line (used for expr-vs-command
// statement disambiguation, spec.md §4.2).
func (p *Parser) atLineStart() bool {
	return p.lex.IsNewLine()
}

// Parse parses the entire input into a Prog, consuming statements until
// EOF. Blank lines (bare NEWLINE/SEMI) between statements are skipped.
func (p *Parser) Parse() *Prog {
	var stmts []Stmt
	for {
		p.skipBlank()
		if p.check(lexer.EOF) {
			break
		}
		stmts = append(stmts, p.parseStmt())
		p.skipBlank()
	}
	return &Prog{Stmts: stmts}
}

// skipBlank consumes newlines and semicolons between statements.
func (p *Parser) skipBlank() {
	for {
		t := p.peek()
		if t.Type == lexer.NEWLINE || t.Type == lexer.SEMI {
			p.lex.Next()
			continue
		}
		break
	}
}
