package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/dialect"
	"pseudo/internal/token"
)

// parseClassDecl parses class, interface, and enum declarations. The
// keyword is recorded in Attr.DeclKw so the transformer can word its
// simplification note.
func (p *Parser) parseClassDecl(mods []string) *ast.Node {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected "+kw.Text+" name")
	if !ok {
		name.Text = "Anonymous"
	}
	n := ast.NewValue(ast.KindClassDecl, kw.Span, name.Text)
	n.Attr.DeclKw = kw.Text
	n.Attr.Mods = mods
	if p.eat(token.KwExtends) {
		if sup, ok := p.typeName(); ok {
			n.Attr.TypeText = sup
		}
	}
	if p.eat(token.KwImplements) {
		for {
			if _, ok := p.typeName(); !ok {
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open "+kw.Text+" body"); !ok {
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		members, ok := p.parseClassMember(name.Text)
		if !ok {
			p.resyncStatement()
			if p.atOr(token.RBrace, token.EOF) {
				break
			}
			p.advance()
			continue
		}
		n.Children = append(n.Children, members...)
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close "+kw.Text+" body")
	n.Span = kw.Span.Cover(p.lastSpan)
	return n
}

func (p *Parser) parseClassMember(className string) ([]*ast.Node, bool) {
	if p.eat(token.Semicolon) {
		return nil, true
	}
	if p.at(token.At) {
		// annotation on a member
		p.advance()
		if p.at(token.Ident) {
			p.advance()
		}
		if sp := p.peek(0).Span; p.eat(token.LParen) {
			p.skipBalanced(token.LParen, token.RParen, sp)
		}
		return nil, true
	}

	var mods []string
	for p.peek(0).Kind.IsModifier() {
		mods = append(mods, p.advance().Text)
	}
	if p.atOr(token.KwClass, token.KwInterface, token.KwEnum) {
		return one(p.parseClassDecl(mods)), true
	}

	if p.lang == dialect.JavaScript {
		return p.parseJSClassMember(mods)
	}
	return p.parseJavaClassMember(className, mods)
}

// parseJSClassMember handles constructor(...), methods, and class fields.
func (p *Parser) parseJSClassMember(mods []string) ([]*ast.Node, bool) {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected class member name")
	if !ok {
		return nil, false
	}
	if p.at(token.LParen) {
		kind := ast.KindMethodDecl
		if name.Text == "constructor" {
			kind = ast.KindCtorDecl
		}
		return one(p.parseFuncRest(name.Span, name.Text, "", mods, kind)), true
	}
	field := ast.NewValue(ast.KindFieldDecl, name.Span, name.Text)
	field.Attr.Mods = mods
	if p.eat(token.Assign) {
		init := p.parseExpression()
		if init == nil {
			p.err(diag.SynExpectExpression, "expected field initializer")
		} else {
			field.Children = append(field.Children, init)
			field.Span = field.Span.Cover(init.Span)
		}
	}
	p.eat(token.Semicolon)
	return one(field), true
}

// parseJavaClassMember handles fields, methods, and constructors.
func (p *Parser) parseJavaClassMember(className string, mods []string) ([]*ast.Node, bool) {
	// Constructor: the class name followed directly by '('.
	if p.at(token.Ident) && p.peek(0).Text == className && p.peek(1).Kind == token.LParen {
		name := p.advance()
		return one(p.parseFuncRest(name.Span, name.Text, "", mods, ast.KindCtorDecl)), true
	}
	if !p.looksLikeJavaDecl() {
		p.err(diag.SynUnexpectedToken, "expected field, method, or constructor")
		return nil, false
	}
	stmts, ok := p.parseJavaDeclStatement(mods)
	if !ok {
		return stmts, false
	}
	// Reclassify as class members.
	for _, s := range stmts {
		switch s.Kind {
		case ast.KindVarDecl:
			s.Kind = ast.KindFieldDecl
		case ast.KindFuncDecl:
			s.Kind = ast.KindMethodDecl
		}
	}
	return stmts, true
}
