package parser

import (
	"pseudo/internal/ast"
	"pseudo/internal/diag"
	"pseudo/internal/source"
	"pseudo/internal/token"
)

// scanJavaType looks ahead from queue index i over a Java type: a primitive
// keyword or dotted identifier, optional generic arguments, optional []
// pairs. It returns the index just past the type. Pure lookahead, nothing
// is consumed.
func (p *Parser) scanJavaType(i int) (int, bool) {
	k := p.peek(i).Kind
	if !k.IsTypeKeyword() && k != token.Ident {
		return i, false
	}
	i++
	for p.peek(i).Kind == token.Dot && p.peek(i+1).Kind == token.Ident {
		i += 2
	}
	if p.peek(i).Kind == token.Lt {
		if j, ok := p.scanGenericArgs(i); ok {
			i = j
		}
	}
	for p.peek(i).Kind == token.LBracket && p.peek(i+1).Kind == token.RBracket {
		i += 2
	}
	return i, true
}

// scanGenericArgs scans a <...> section starting at an Lt. To avoid
// mistaking comparisons for generics, only tokens that can appear inside
// type arguments are accepted.
func (p *Parser) scanGenericArgs(i int) (int, bool) {
	depth := 1
	j := i + 1
	for steps := 0; steps < 64; steps++ {
		switch p.peek(j).Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		case token.Shr:
			depth -= 2
		case token.Ident, token.Comma, token.Dot, token.Question,
			token.LBracket, token.RBracket, token.KwExtends:
			// allowed inside type arguments
		default:
			if !p.peek(j).Kind.IsTypeKeyword() {
				return i, false
			}
		}
		j++
		if depth <= 0 {
			return j, true
		}
	}
	return i, false
}

// looksLikeJavaDecl reports whether the upcoming tokens read as
// `Type name`, the shape that separates declarations from expressions.
func (p *Parser) looksLikeJavaDecl() bool {
	end, ok := p.scanJavaType(0)
	if !ok {
		return false
	}
	return p.peek(end).Kind == token.Ident
}

// parseJavaType consumes a type and returns its source text.
func (p *Parser) parseJavaType() (string, bool) {
	end, ok := p.scanJavaType(0)
	if !ok || end == 0 {
		return "", false
	}
	start := p.peek(0).Span
	hadGenerics := false
	for n := 0; n < end; n++ {
		if p.peek(0).Kind == token.Lt {
			hadGenerics = true
		}
		p.advance()
	}
	text := p.textBetween(start.Cover(p.lastSpan))
	if hadGenerics {
		p.warnUnsupported(diag.SynUnsupportedGenerics, start.Cover(p.lastSpan),
			"generic type arguments are dropped in pseudocode",
			"use the element type directly, e.g. an ARRAY OF the contained type")
	}
	return text, true
}

// parseJavaDeclStatement parses a typed statement once looksLikeJavaDecl
// matched: either a method declaration or one or more variable declarators.
func (p *Parser) parseJavaDeclStatement(mods []string) ([]*ast.Node, bool) {
	start := p.peek(0).Span
	typeText, ok := p.parseJavaType()
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected type name")
		return nil, false
	}
	if p.at(token.Ident) && p.peek(1).Kind == token.LParen {
		name := p.advance()
		fn := p.parseFuncRest(start, name.Text, typeText, mods, ast.KindFuncDecl)
		return one(fn), true
	}
	return p.parseJavaDeclarators(start, typeText, mods, false)
}

// parseJavaVarDecl parses `Type name (= init)? (, name ...)? ;`.
func (p *Parser) parseJavaVarDecl(mods []string, inline bool) ([]*ast.Node, bool) {
	start := p.peek(0).Span
	typeText, ok := p.parseJavaType()
	if !ok {
		p.err(diag.SynUnexpectedToken, "expected type name")
		return nil, false
	}
	return p.parseJavaDeclarators(start, typeText, mods, inline)
}

func (p *Parser) parseJavaDeclarators(start source.Span, typeText string, mods []string, inline bool) ([]*ast.Node, bool) {
	var decls []*ast.Node
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
		if !ok {
			return decls, false
		}
		n := ast.NewValue(ast.KindVarDecl, start.Cover(name.Span), name.Text)
		n.Attr.TypeText = typeText
		n.Attr.Mods = mods
		// C-style array suffix: int x[];
		for p.at(token.LBracket) && p.peek(1).Kind == token.RBracket {
			p.advance()
			p.advance()
			n.Attr.TypeText += "[]"
		}
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
		if !p.eat(token.Comma) {
			break
		}
	}
	if !inline {
		p.eat(token.Semicolon)
	}
	return decls, true
}

// parseFuncRest parses a parameter list and body after the name of a
// function, method, or constructor has been consumed.
func (p *Parser) parseFuncRest(start source.Span, name, returnType string, mods []string, kind ast.NodeKind) *ast.Node {
	params := p.parseParamList()
	// throws clause: consume the exception type list.
	if p.at(token.Ident) && p.peek(0).Text == "throws" {
		p.advance()
		for {
			if _, ok := p.typeName(); !ok {
				break
			}
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	var body *ast.Node
	if p.at(token.LBrace) {
		body = p.parseBlock()
	} else {
		// abstract or interface method
		p.eat(token.Semicolon)
		body = ast.New(ast.KindEmpty, p.diagnosticSpan())
	}
	n := ast.NewValue(kind, start.Cover(p.lastSpan), name, params, body)
	n.Attr.TypeText = returnType
	n.Attr.Mods = mods
	return n
}
