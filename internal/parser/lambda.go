package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/token"
)

// parenStartsArrow looks ahead from a '(' to the matching ')' and reports
// whether '=>' follows, which is the only reliable way to tell arrow
// parameters from a parenthesized expression before committing.
func (p *Parser) parenStartsArrow() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peek(i)
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peek(i+1).Kind == token.Arrow
			}
		case token.EOF:
			return false
		}
		if i > 512 {
			return false
		}
	}
}

// parseArrow parses `x => body` and `(a, b) => body`. Arrow functions have
// no pseudocode equivalent; the node is kept so the transformer can emit
// an explanatory comment in place of the expression.
func (p *Parser) parseArrow() *ast.Node {
	start := p.peek(0).Span
	params := ast.New(ast.KindParamList, start)
	if p.at(token.Ident) {
		tok := p.advance()
		params.Children = append(params.Children,
			ast.NewValue(ast.KindParam, tok.Span, tok.Text))
	} else if p.eat(token.LParen) {
		for !p.at(token.RParen) && !p.at(token.EOF) {
			if tok := p.peek(0); tok.Kind == token.Ident {
				p.advance()
				params.Children = append(params.Children,
					ast.NewValue(ast.KindParam, tok.Span, tok.Text))
			} else {
				// Patterns, defaults, rest args: skip to ',' or ')'.
				p.advance()
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close arrow parameters")
	}
	p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '=>'")

	var body *ast.Node
	if p.at(token.LBrace) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression()
		if body == nil {
			body = ast.New(ast.KindEmpty, p.diagnosticSpan())
		}
	}
	full := start.Cover(p.lastSpan)
	p.warnUnsupported(diag.SynUnsupportedLambda, full,
		"arrow function has no pseudocode equivalent",
		"re-express as a named PROCEDURE or FUNCTION and call it by name")
	return ast.New(ast.KindArrow, full, params, body)
}
