package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

// parseJSVarDecl parses a var/let/const declaration with any number of
// declarators. inline suppresses the trailing-semicolon consumption for
// for-headers.
func (p *Parser) parseJSVarDecl(inline bool) ([]*ast.Node, bool) {
	kw := p.advance()
	var decls []*ast.Node
	for {
		if p.at(token.LBracket) || p.at(token.LBrace) {
			decls = append(decls, p.parseDestructured(kw.Span))
		} else {
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
			if !ok {
				return decls, false
			}
			n := ast.NewValue(ast.KindVarDecl, kw.Span.Cover(name.Span), name.Text)
			n.Attr.DeclKw = kw.Text
			if p.eat(token.Assign) {
				init := p.parseExpression()
				if init == nil {
					p.err(diag.SynExpectExpression, "expected initializer after '='")
				} else {
					n.Children = append(n.Children, init)
					n.Span = n.Span.Cover(init.Span)
				}
			}
			decls = append(decls, n)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if !inline {
		p.eat(token.Semicolon)
	}
	return decls, true
}

// parseDestructured consumes a destructuring pattern plus its initializer
// and keeps the raw text as an Unsupported node.
func (p *Parser) parseDestructured(from source.Span) *ast.Node {
	open := p.peek(0)
	sp := p.advance().Span
	var full = sp
	if open.Kind == token.LBracket {
		full = p.skipBalanced(token.LBracket, token.RBracket, sp)
	} else {
		full = p.skipBalanced(token.LBrace, token.RBrace, sp)
	}
	if p.eat(token.Assign) {
		p.parseExpression()
	}
	full = from.Cover(full).Cover(p.lastSpan)
	p.warnUnsupported(diag.SynUnsupportedDestructure, full,
		"destructuring declaration has no pseudocode equivalent",
		"declare each variable separately and assign its element or field by name")
	return ast.NewValue(ast.KindUnsupported, full, p.textBetween(full))
}

// parseJSFunc parses `function name(params) { body }`.
func (p *Parser) parseJSFunc() *ast.Node {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		name.Text = "anonymous"
	}
	params := p.parseParamList()
	body := p.parseBlock()
	return ast.NewValue(ast.KindFuncDecl, kw.Span.Cover(p.lastSpan), name.Text, params, body)
}

// parseParamList parses a parenthesized parameter list for either dialect.
func (p *Parser) parseParamList() *ast.Node {
	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to open parameter list")
	if !ok {
		return ast.New(ast.KindParamList, p.diagnosticSpan())
	}
	list := ast.New(ast.KindParamList, open.Span)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			sp := p.advance().Span
			p.warnUnsupported(diag.SynUnsupportedSpread, sp,
				"rest parameter has no pseudocode equivalent",
				"declare an explicit parameter for each argument the routine takes")
		}
		var param *ast.Node
		if p.lang == dialect.Java {
			typeText, ok := p.parseJavaType()
			if !ok {
				p.err(diag.SynUnexpectedToken, "expected parameter type")
				p.advance()
				continue
			}
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				continue
			}
			param = ast.NewValue(ast.KindParam, name.Span, name.Text)
			param.Attr.TypeText = typeText
		} else {
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
			if !ok {
				p.advance()
				continue
			}
			param = ast.NewValue(ast.KindParam, name.Span, name.Text)
			if p.eat(token.Assign) {
				// Default values do not survive conversion.
				p.parseExpression()
			}
		}
		list.Children = append(list.Children, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list")
	list.Span = open.Span.Cover(p.lastSpan)
	return list
}
