package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/token"
)

// parseImportLike parses import/export/package statements. The raw text is
// kept so the transformer can turn it into an explanatory comment.
func (p *Parser) parseImportLike() *ast.Node {
	kw := p.advance()
	for !p.atOr(token.Semicolon, token.EOF) {
		if startsNewLine(p.peek(0)) {
			break
		}
		p.advance()
	}
	p.eat(token.Semicolon)
	full := kw.Span.Cover(p.lastSpan)
	p.warnUnsupported(diag.SynUnsupportedImport, full,
		"'"+kw.Text+"' statement has no pseudocode equivalent",
		"kept as a comment; declare any routines and constants it provides explicitly")
	return ast.NewValue(ast.KindImport, full, p.textBetween(full))
}

// startsNewLine reports whether a token begins a new source line.
func startsNewLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// parseTry parses try/catch/finally. The blocks survive; the handling
// structure itself does not, which the transformer annotates.
func (p *Parser) parseTry() *ast.Node {
	kw := p.advance()
	tryBlock := p.parseBlock()
	n := ast.New(ast.KindTry, kw.Span, tryBlock)
	if p.eat(token.KwCatch) {
		if p.eat(token.LParen) {
			if p.lang == dialect.Java {
				p.parseJavaType()
			}
			if p.at(token.Ident) {
				n.Value = p.advance().Text
			}
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter")
		}
		n.Children = append(n.Children, p.parseBlock())
	} else {
		n.Children = append(n.Children, ast.New(ast.KindEmpty, p.diagnosticSpan()))
	}
	if p.eat(token.KwFinally) {
		n.Children = append(n.Children, p.parseBlock())
	}
	n.Span = kw.Span.Cover(p.lastSpan)
	p.warnUnsupported(diag.SynUnsupportedTryCatch, n.Span,
		"try/catch has no pseudocode equivalent; block contents are kept",
		"guard the risky operation with an IF check instead of catching a failure")
	return n
}

func (p *Parser) parseThrow() *ast.Node {
	kw := p.advance()
	expr := p.parseExpression()
	p.eat(token.Semicolon)
	n := ast.New(ast.KindThrow, kw.Span.Cover(p.lastSpan))
	if expr != nil {
		n.Children = append(n.Children, expr)
	}
	return n
}
