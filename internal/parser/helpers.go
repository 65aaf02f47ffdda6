package parser

import (
	"strings"

	"pseudo/internal/diag"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

// advance consumes the next token and records its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.peek(0)
	p.queue = p.queue[1:]
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat consumes the next token when it matches, otherwise does nothing.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// diagnosticSpan picks the best span for a diagnostic at the current
// position. At EOF the span degrades to the end of the last real token so
// "unclosed brace" style errors do not point at offset zero.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.peek(0)
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of the given kind or reports an error. On a
// mismatch it returns an Invalid token and false without consuming.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.peek(0).Text}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) warn(code diag.Code, msg string) {
	p.report(code, diag.SevWarning, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// warnUnsupported reports an unsupported-construct warning. Every such
// warning carries a note suggesting how to re-express the construct.
func (p *Parser) warnUnsupported(code diag.Code, sp source.Span, msg, suggestion string) bool {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, diag.SevWarning, sp, msg,
		[]diag.Note{{Span: sp, Msg: suggestion}})
	return true
}

// leadingComments extracts the line-comment texts attached to a token so a
// statement node can carry them through to the output.
func leadingComments(tok token.Token) []string {
	var out []string
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaLineComment {
			out = append(out, tr.Text)
		}
	}
	return out
}

// hasBlankBefore reports whether a blank line precedes the token. Newline
// runs coalesce into one trivia piece, so two or more '\n' in a single
// piece means at least one empty line.
func hasBlankBefore(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind != token.TriviaNewline {
			continue
		}
		if strings.Count(tr.Text, "\n") >= 2 {
			return true
		}
	}
	return false
}

// skipBalanced consumes tokens up to and including the closer matching the
// already-consumed opener. Used to step over bodies the parser refuses to
// descend into. Returns the span of the skipped region.
func (p *Parser) skipBalanced(open, close token.Kind, from source.Span) source.Span {
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.peek(0).Kind {
		case open:
			depth++
		case close:
			depth--
		}
		p.advance()
	}
	return from.Cover(p.lastSpan)
}

// textBetween returns the raw source slice covered by a span.
func (p *Parser) textBetween(sp source.Span) string {
	file := p.lx.File()
	if file == nil || sp.End > uint32(len(file.Content)) || sp.Start > sp.End {
		return ""
	}
	return string(file.Content[sp.Start:sp.End])
}
