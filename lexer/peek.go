/*
File    : koi/lexer/peek.go

Peekable adds one-token lookahead on top of a Recorder, and a couple
of whitespace-skipping conveniences the parser uses constantly
(Koi's grammar is whitespace-significant only at statement boundaries
and inside command atoms).
*/
package lexer

// Peekable is the lexer facade the parser actually talks to.
type Peekable struct {
	rec    *Recorder
	peeked *Token
	peekedEntry recordedEntry
}

// NewPeekable builds a Peekable lexer over src.
func NewPeekable(src string) *Peekable {
	return &Peekable{rec: NewRecorder(NewRaw(src))}
}

// StartRecording / StopRecording expose the underlying Recorder's
// record/replay facility to the parser.
func (p *Peekable) StartRecording()         { p.rec.StartRecording() }
func (p *Peekable) StopRecording(replay bool) { p.rec.StopRecording(replay) }

// Peek returns the next token without consuming it.
func (p *Peekable) Peek() Token {
	if p.peeked == nil {
		// Capture is-new-line state *before* producing the token: the
		// flag means "no real token produced yet on this line", so it
		// must describe the token about to be pulled, not the one
		// after it.
		wasNewLine := p.rec.IsNewLine()
		t := p.rec.Next()
		// If a recording is active, Next() just appended t's entry to
		// it; roll that entry back out so it isn't double-counted, and
		// hold onto it so Next() can re-commit it once the peeked
		// token is actually consumed.
		e, ok := p.rec.rollbackLast()
		p.peeked = &t
		if ok {
			p.peekedEntry = e
		} else {
			p.peekedEntry = recordedEntry{tok: t, isNewLine: wasNewLine}
		}
	}
	return *p.peeked
}

// Next consumes and returns the next token.
func (p *Peekable) Next() Token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		p.rec.reappend(p.peekedEntry)
		return t
	}
	return p.rec.Next()
}

// IsNewLine reports whether the current position is still at the
// start of its source line (no non-whitespace token produced yet).
func (p *Peekable) IsNewLine() bool {
	if p.peeked != nil {
		return p.peekedEntry.isNewLine
	}
	return p.rec.IsNewLine()
}

// ConsumeWhitespace advances past SPACE tokens, and past NEWLINE tokens
// too when includeNewlines is true.
func (p *Peekable) ConsumeWhitespace(includeNewlines bool) {
	for {
		t := p.Peek()
		if t.Type == SPACE || (includeNewlines && t.Type == NEWLINE) {
			p.Next()
			continue
		}
		break
	}
}
